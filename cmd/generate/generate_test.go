/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"bennypowers.dev/prism/config"
)

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{
		Files:  []string{"tokens.yaml"},
		Output: "Package",
		Kinds:  []string{"color"},
	}

	t.Run("unset flags keep config", func(t *testing.T) {
		got := applyFlags(viper.New(), cfg)
		assert.Equal(t, cfg, got)
	})

	t.Run("set flags override config", func(t *testing.T) {
		v := viper.New()
		v.Set("output", "Out")
		v.Set("include-inherited", true)
		v.Set("kinds", []string{"size", "space"})

		got := applyFlags(v, cfg)
		assert.Equal(t, "Out", got.Output)
		assert.True(t, got.IncludeInheritedTokens)
		assert.Equal(t, []string{"size", "space"}, got.Kinds)
		assert.Equal(t, "Package", cfg.Output, "config must not be mutated")
	})
}

func TestOutputDir(t *testing.T) {
	got, err := outputDir("/project", "Package")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("/project", "Package"), got)

	got, err = outputDir("/project", "")
	assert.NoError(t, err)
	assert.Equal(t, "/project", got)

	got, err = outputDir("/project", "/elsewhere")
	assert.NoError(t, err)
	assert.Equal(t, "/elsewhere", got)
}
