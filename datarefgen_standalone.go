//go:build ignore

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/jessevdk/go-flags"
	"github.com/xairline/xa-datarefs/utils/codegen"
	"github.com/xairline/xa-datarefs/utils/logger"
)

type options struct {
	Schema  string `long:"schema" description:"dataref schema yaml" default:"datarefs/schema.yaml"`
	Out     string `long:"out" description:"output directory" default:"datarefs"`
	Package string `long:"package" description:"package name of the generated files" default:"datarefs"`
	Check   bool   `long:"check" description:"fail if the generated files are out of date instead of writing them"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	log := logger.NewGenericLogger()

	data, err := os.ReadFile(opts.Schema)
	if err != nil {
		log.Errorf("Read schema: %v", err)
		os.Exit(1)
	}
	schema, err := codegen.ParseSchema(data)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	files, err := codegen.Render(opts.Package, schema)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	stale := 0
	for _, name := range names {
		path := filepath.Join(opts.Out, name)
		if opts.Check {
			current, err := os.ReadFile(path)
			if err != nil || !bytes.Equal(current, files[name]) {
				log.Warningf("%s is out of date", path)
				stale++
			}
			continue
		}
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			log.Errorf("Write %s: %v", path, err)
			os.Exit(1)
		}
		log.Infof("Wrote %s", path)
	}
	if stale > 0 {
		os.Exit(1)
	}
	log.Infof("%d datarefs in %d files", len(schema), len(files))
}
