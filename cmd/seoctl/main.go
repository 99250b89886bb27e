package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/kamrah334/FreeSEOToolkit/internal/density"
	"github.com/kamrah334/FreeSEOToolkit/internal/detect"
	"github.com/kamrah334/FreeSEOToolkit/internal/ingest"
	"github.com/kamrah334/FreeSEOToolkit/internal/pipeline"
)

const minContentRunes = 50

func main() {
	workers := flag.Int("workers", 0, "number of parallel analyses (0 = CPU count)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file...\n\nAnalyzes .txt, .md, .docx and .pdf files for keyword density and AI-content signals.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	engine := density.NewEngine(density.DefaultConfig())
	detector := detect.NewDefault()

	var mu sync.Mutex
	errs := pipeline.AnalyzeFiles(paths, *workers, func(path string) error {
		doc, err := ingest.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		report := engine.Analyze(doc.Text)
		var result *detect.Result
		if len([]rune(doc.Text)) >= minContentRunes {
			r := detector.Classify(doc.Text)
			result = &r
		}

		mu.Lock()
		defer mu.Unlock()
		printReport(doc, report, result)
		return nil
	})

	for _, err := range errs {
		fmt.Fprintln(os.Stderr, color.Red.Sprint(err))
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
}

func printReport(doc *ingest.Document, report density.Report, result *detect.Result) {
	color.Bold.Printf("\n%s (%s)\n", doc.Title, doc.SourcePath)
	fmt.Printf("Words: %d  Unique keywords: %d  Average density: %.2f%%\n\n",
		report.TotalWords, report.UniqueKeywords, report.AverageDensity)

	if len(report.TopKeywords) > 0 {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Keyword", "Frequency", "Density %", "Tier"})
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorder(false)
		for _, k := range report.TopKeywords {
			table.Append([]string{
				k.Word,
				strconv.Itoa(k.Frequency),
				fmt.Sprintf("%.2f", k.Density),
				string(k.Tier),
			})
		}
		table.Render()
	}

	if result == nil {
		fmt.Printf("\nText too short for AI-content detection (needs %d characters).\n", minContentRunes)
		return
	}

	verdictColor := color.Green
	switch {
	case result.AIProbability >= 60:
		verdictColor = color.Red
	case result.AIProbability >= 40:
		verdictColor = color.Yellow
	}
	fmt.Printf("\nAI probability: %d%%  Human probability: %d%%  Confidence: %s\n",
		result.AIProbability, result.HumanProbability, result.Confidence)
	verdictColor.Println(result.Verdict)

	for _, rec := range result.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}
