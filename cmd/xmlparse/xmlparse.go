package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/soapkit/xsdbridge/internal/commandline"
	"github.com/soapkit/xsdbridge/xmlobj"
)

var (
	indent = flag.String("indent", "  ", "indentation for the JSON output")
	fields commandline.Strings
)

func main() {
	log.SetFlags(0)
	flag.Var(&fields, "f", "print only this top-level field (can be used multiple times)")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("Usage: %s [-f field] [-indent str] file.xml ...", os.Args[0])
	}
	for _, filename := range flag.Args() {
		data, err := os.ReadFile(filename)
		if err != nil {
			log.Fatal(err)
		}
		obj, err := xmlobj.Parse(data)
		if err != nil {
			log.Fatal(errors.Wrapf(err, "parse %s", filename))
		}
		if len(fields) > 0 {
			picked := make(map[string]interface{}, len(fields))
			for _, f := range fields {
				if v, ok := obj[f]; ok {
					picked[f] = v
				}
			}
			obj = picked
		}
		out, err := json.MarshalIndent(obj, "", *indent)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\n", out)
	}
}
