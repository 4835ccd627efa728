// pdffill is a command-line tool for filling form fields onto a PDF.
//
// It reads a source PDF and a fields file describing what to place where,
// then writes the filled document. Field rectangles use Anvil coordinates:
// origin at the page's top-left corner, y increasing downward, in points.
//
// Usage:
//
//	pdffill -pdf document.pdf -fields fields.yml -output filled.pdf
//
// Flags:
//
//	-pdf string      Path to the source PDF (required)
//	-fields string   Path to the fields file, YAML or JSON (required)
//	-output string   Output PDF path (required)
//	-overwrite       Overwrite the output file if it exists
//
// Fields file format:
//
//	- name: full_name
//	  kind: text
//	  page: 0
//	  rect: {x: 50, y: 100, width: 200, height: 20}
//	  value: Jane Doe
//	- name: signature
//	  kind: signature
//	  page: 0
//	  rect: {x: 50, y: 300, width: 150, height: 60}
//	  value: https://example.com/signature.png
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ricky01-x/PDF-fill/pkg/pdffill"
)

type fieldSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Page int    `yaml:"page"`
	Rect struct {
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"rect"`
	Value string `yaml:"value"`
}

// loadFields reads the fields file and converts it to fill instructions.
func loadFields(path string) ([]pdffill.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var specs []fieldSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, err
	}
	fields := make([]pdffill.Field, 0, len(specs))
	for _, spec := range specs {
		fields = append(fields, pdffill.Field{
			Name: spec.Name,
			Kind: spec.Kind,
			Page: spec.Page,
			Rect: pdffill.Rect{
				X:      spec.Rect.X,
				Y:      spec.Rect.Y,
				Width:  spec.Rect.Width,
				Height: spec.Rect.Height,
			},
			Value: spec.Value,
		})
	}
	return fields, nil
}

func main() {
	pdfPath := flag.String("pdf", "", "Path to the source PDF")
	fieldsPath := flag.String("fields", "", "Path to the fields file (YAML or JSON)")
	outputPath := flag.String("output", "", "Output PDF path")
	overwriteOutput := flag.Bool("overwrite", false, "Overwrite the output PDF if it already exists")
	flag.Parse()

	if *pdfPath == "" || *fieldsPath == "" || *outputPath == "" {
		fmt.Println("Error: Must provide -pdf, -fields and -output paths")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*outputPath); err == nil {
		if !*overwriteOutput {
			fmt.Printf("Output file %s already exists. Use -overwrite to overwrite.\n", *outputPath)
			os.Exit(1)
		}
		os.Remove(*outputPath)
	}

	src, err := os.ReadFile(*pdfPath)
	if err != nil {
		fmt.Printf("Failed to read input PDF: %v\n", err)
		os.Exit(1)
	}

	fields, err := loadFields(*fieldsPath)
	if err != nil {
		fmt.Printf("Failed to read fields file: %v\n", err)
		os.Exit(1)
	}

	cfg := pdffill.DefaultConfig()
	cfg.Logger = os.Stdout

	filled, err := pdffill.Fill(context.Background(), src, fields, cfg)
	if err != nil {
		fmt.Printf("Error filling PDF: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputPath, filled, 0666); err != nil {
		fmt.Printf("Failed to write output PDF: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Filled PDF created:", *outputPath)
}
