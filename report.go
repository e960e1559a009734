package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/spaghettifunk/donut/engine/assets"
	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/resources"
	"github.com/spaghettifunk/donut/engine/systems"
)

var categories = []resources.Category{
	resources.CategoryTexture,
	resources.CategoryShader,
	resources.CategoryMesh,
	resources.CategoryFont,
	resources.CategoryAnimation,
}

type reportOptions struct {
	names bool
	yaml  bool
}

type loadReport struct {
	Files          int64           `yaml:"files"`
	FailedFiles    int64           `yaml:"failed_files"`
	Bytes          int64           `yaml:"bytes"`
	Chunks         int64           `yaml:"chunks"`
	Decoded        int64           `yaml:"decoded"`
	Unrecognized   int64           `yaml:"unrecognized"`
	DecodeFailures int64           `yaml:"decode_failures"`
	Resources      resourceReport  `yaml:"resources"`
	Names          []categoryNames `yaml:"names,omitempty"`
}

type resourceReport struct {
	Textures   int `yaml:"textures"`
	Shaders    int `yaml:"shaders"`
	Meshes     int `yaml:"meshes"`
	Fonts      int `yaml:"fonts"`
	Animations int `yaml:"animations"`
}

type categoryNames struct {
	Category string   `yaml:"category"`
	Names    []string `yaml:"names"`
}

func newLoadReport(m core.LoadMetricsSnapshot, s systems.ResourceStats) loadReport {
	return loadReport{
		Files:          m.Files,
		FailedFiles:    m.FailedFiles,
		Bytes:          m.Bytes,
		Chunks:         m.Chunks,
		Decoded:        m.Decoded,
		Unrecognized:   m.Unrecognized,
		DecodeFailures: m.DecodeFailures,
		Resources: resourceReport{
			Textures:   s.Textures,
			Shaders:    s.Shaders,
			Meshes:     s.Meshes,
			Fonts:      s.Fonts,
			Animations: s.Animations,
		},
	}
}

func report(w io.Writer, rm *systems.ResourceManager, loader *assets.AssetLoader, opts reportOptions) error {
	if opts.yaml {
		r := newLoadReport(loader.Metrics().Snapshot(), rm.Stats())
		if opts.names {
			for _, c := range categories {
				r.Names = append(r.Names, categoryNames{Category: c.String(), Names: rm.Names(c)})
			}
		}
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintln(w, loader.Metrics().Snapshot())
	fmt.Fprintln(w, rm.Stats())
	if !opts.names {
		return nil
	}
	for _, c := range categories {
		for _, name := range rm.Names(c) {
			fmt.Fprintf(w, "%s\t%s\n", c, name)
		}
	}
	return nil
}
