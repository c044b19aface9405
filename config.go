// config.go
//
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
//
// This file implements process configuration shared by the cmd/
// binaries: a dictionary path, the goodEnough search cutoff, a log
// level, and (for cmd/scrabbleapi) an HTTP port and bearer token.
// Configuration is layered the usual viper way - flags over
// environment variables - with a local .env file loaded first via
// godotenv for convenient local development. No config file is read.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package skrafl

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings a cmd/ binary needs to stand up an
// Engine and, optionally, an HTTP server around it.
type Config struct {
	DictPath   string
	GoodEnough int
	LogLevel   string
	HTTPPort   string
	AuthToken  string
}

// LoadConfig reads configuration from (in increasing priority) a
// local .env file, environment variables prefixed SKRAFL_, and
// command-line flags registered on fs. It does not read a config
// file.
// fs is typically pflag.CommandLine; args is typically os.Args[1:].
func LoadConfig(fs *pflag.FlagSet, args []string) (Config, error) {
	// Best-effort: a missing .env file in production is normal, not
	// an error worth failing startup over.
	_ = godotenv.Load()

	fs.String("dict", "", "path to a packed dictionary file")
	fs.Int("goodenough", DefaultGoodEnough, "score at which FindMove stops searching for a better play")
	fs.String("loglevel", "info", "zerolog level: debug, info, warn, error")
	fs.String("port", "8080", "HTTP port for cmd/scrabbleapi")
	fs.String("token", "", "bearer token required by cmd/scrabbleapi; empty disables auth")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("skrafl")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	return Config{
		DictPath:   v.GetString("dict"),
		GoodEnough: v.GetInt("goodenough"),
		LogLevel:   v.GetString("loglevel"),
		HTTPPort:   v.GetString("port"),
		AuthToken:  v.GetString("token"),
	}, nil
}
