/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"path"

	"bennypowers.dev/prism/kind"
	"bennypowers.dev/prism/theme"
)

// moduleDir returns the source directory of a theme's Swift module.
func moduleDir(t theme.Theme) string {
	if t.IsDefault() {
		return path.Join(SourcesRoot, ModuleName)
	}
	return path.Join(SourcesRoot, ModuleName+themeName(t))
}

// FilePathForThemeActivator returns the activator source path.
func (f Functions) FilePathForThemeActivator(t theme.Theme) string {
	return path.Join(moduleDir(t), f.ActivatorName(t)+".swift")
}

// FilePathForThemeProvider returns the theme provider source path.
func (f Functions) FilePathForThemeProvider(t theme.Theme) string {
	return path.Join(moduleDir(t), f.ThemeProviderName(themeName(t))+".swift")
}

// FilePathForFonts returns the font registry source path.
func (f Functions) FilePathForFonts(t theme.Theme) string {
	return path.Join(moduleDir(t), f.FontsName(t)+".swift")
}

// FilePathForTokenProvider returns the token provider source path. The
// default theme's extension lives with the core providers.
func (f Functions) FilePathForTokenProvider(t theme.Theme, k kind.Kind, isExtension bool) string {
	if t.IsDefault() && isExtension {
		return path.Join(SourcesRoot, ModuleName, "Core", "Providers", "Extensions",
			f.TokenProviderName(k, "")+"+Extensions.swift")
	}
	return path.Join(moduleDir(t), f.TokenProviderName(k, themeName(t))+".swift")
}

// FilePathForTokenProtocol returns the source path of a kind's provider
// protocol.
func (f Functions) FilePathForTokenProtocol(k kind.Kind) string {
	return path.Join(SourcesRoot, ModuleName, "Core", "Providers", f.TokenProviderName(k, "")+".swift")
}
