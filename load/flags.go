/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import "github.com/spf13/viper"

// FromFlags builds Options from the CLI's persistent flags as bound in v,
// with args as the file list.
func FromFlags(v *viper.Viper, args []string) Options {
	opts := Options{
		Root:  v.GetString("root"),
		Files: args,
	}
	if v.GetBool("remote") {
		opts.Fetcher = NewHTTPFetcher(DefaultMaxSize)
	}
	return opts
}
