package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/inspect/annotation"
	"seehuhn.de/go/inspect/punch"
	"seehuhn.de/go/inspect/session"
)

func main() {
	verbose := flag.Bool("v", false, "list every punch")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [options] file.session\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	s, err := session.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading session: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("project:        %s\n", s.ProjectName)
	fmt.Printf("sales order:    %s\n", s.SalesOrderNo)
	fmt.Printf("cabinet:        %s\n", s.CabinetID)
	fmt.Printf("highest serial: %d\n", s.HighestSerial)

	var numHighlight, numPen, numNote int
	for _, a := range s.Annotations {
		switch a.AnnotationType() {
		case annotation.TypeHighlight:
			numHighlight++
		case annotation.TypePen:
			numPen++
		case annotation.TypeNote:
			numNote++
		}
	}
	fmt.Printf("annotations:    %d highlights, %d pen strokes, %d notes\n",
		numHighlight, numPen, numNote)

	counts := make(map[punch.State]int)
	for _, p := range s.Punches {
		counts[p.State()]++
	}
	fmt.Printf("punches:        %d logged, %d implemented, %d closed\n",
		counts[punch.Logged], counts[punch.Implemented], counts[punch.Closed])
	if punch.FullyClosed(s.Punches) && len(s.Punches) > 0 {
		fmt.Println("all punches are closed")
	}

	if *verbose {
		fmt.Println()
		for _, p := range s.Punches {
			fmt.Printf("%4d  %-12s %-8s %s\n",
				p.Serial, p.Ref, p.State(), p.Description)
		}
	}

	numBad := 0
	for _, p := range s.Punches {
		if s.HighlightFor(p.Serial) == nil {
			fmt.Fprintf(os.Stderr, "punch %d has no linked highlight\n", p.Serial)
			numBad++
		}
	}
	for _, a := range s.Annotations {
		h, ok := a.(*annotation.Highlight)
		if !ok || h.Serial == 0 {
			continue
		}
		found := false
		for _, p := range s.Punches {
			if p.Serial == h.Serial {
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "highlight %s links to unknown punch %d\n",
				h.ID, h.Serial)
			numBad++
		}
	}
	if numBad > 0 {
		os.Exit(1)
	}
}
