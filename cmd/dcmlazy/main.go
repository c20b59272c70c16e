// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command dcmlazy inspects DICOM files without reading values it is not asked for.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/GoogleCloudPlatform/go-dicom-lazy/dicom"
	"github.com/GoogleCloudPlatform/go-dicom-lazy/internal/config"
	"github.com/GoogleCloudPlatform/go-dicom-lazy/internal/logging"
	"github.com/GoogleCloudPlatform/go-dicom-lazy/internal/source"
)

// CLI defines the command-line interface for dcmlazy.
type CLI struct {
	// Global flags, defaulting to the DCMLAZY_* environment
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)."`
	LogFormat string `name:"log-format" help:"Log format (text, json)."`
	Charset   string `name:"charset" help:"Specific Character Set assumed until the file declares one, e.g. ISO_IR 192."`

	Dump   DumpCmd   `cmd:"" help:"List element headers without reading any value"`
	Get    GetCmd    `cmd:"" help:"Print the values of elements given by tag or attribute name"`
	Pixels PixelsCmd `cmd:"" help:"Summarize the pixel data payload"`
}

// env is handed to every command
type env struct {
	out              io.Writer
	logger           *slog.Logger
	charset          string
	maxInflatedBytes int64
}

func (e *env) open(path string) (*dicom.LazyObject, error) {
	r, err := source.Open(path, e.maxInflatedBytes)
	if err != nil {
		return nil, err
	}

	opts := []dicom.Option{
		dicom.WithLogger(e.logger),
		dicom.WithMaxInflatedBytes(e.maxInflatedBytes),
	}
	if e.charset != "" {
		opts = append(opts, dicom.WithDefaultCharacterSet(e.charset))
	}

	obj, err := dicom.Open(r, opts...)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.logger.Debug("opened file", "path", path, "elements", obj.Len(), "transfer_syntax", obj.TransferSyntaxUID())
	return obj, nil
}

func newEnv(cli *CLI, cfg config.Config, stdout, stderr io.Writer) (*env, error) {
	levelName, formatName, charset := cfg.LogLevel, cfg.LogFormat, cfg.DefaultCharset
	if cli.LogLevel != "" {
		levelName = cli.LogLevel
	}
	if cli.LogFormat != "" {
		formatName = cli.LogFormat
	}
	if cli.Charset != "" {
		charset = cli.Charset
	}

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return &env{
		out:              stdout,
		logger:           logging.New(stderr, level, format),
		charset:          charset,
		maxInflatedBytes: cfg.MaxInflatedBytes,
	}, nil
}

func run(args []string, cfg config.Config, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("dcmlazy"),
		kong.Description("Lazily inspect DICOM files"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	e, err := newEnv(&cli, cfg, stdout, stderr)
	if err != nil {
		return err
	}
	return ctx.Run(e)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dcmlazy:", err)
		os.Exit(2)
	}
	if err := run(os.Args[1:], cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "dcmlazy:", err)
		os.Exit(1)
	}
}
