package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/soapkit/xsdbridge/gogen"
	"github.com/soapkit/xsdbridge/internal/commandline"
	"github.com/soapkit/xsdbridge/schema"
	"github.com/soapkit/xsdbridge/xsdgen"
)

var (
	rootName = flag.String("root", "Root", "name of the root element")
	output   = flag.String("o", "", "name of the output file (default stdout)")
	pkgName  = flag.String("pkg", "", "emit Go declarations for this package instead of an XSD")
	verbose  = flag.Bool("v", false, "print debug information about the compilation")
	descs    commandline.Pairs
)

func main() {
	log.SetFlags(0)
	flag.Var(&descs, "desc", "description override 'path.to.field=text' (can be used multiple times)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("Usage: %s [-root name] [-o file] [-pkg pkg] [-desc path=text] schema.json", os.Args[0])
	}
	if err := run(flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	root, err := schema.Decode(data)
	if err != nil {
		return errors.Wrapf(err, "parse %s", filename)
	}
	for _, kv := range descs {
		if !describe(root, kv.Key, kv.Value) {
			log.Printf("warning: no schema node at %q", kv.Key)
		}
	}

	var out []byte
	if *pkgName != "" {
		if out, err = gogen.GenerateSource(root, *pkgName, *rootName); err != nil {
			return err
		}
	} else {
		var cfg xsdgen.Config
		cfg.Option(xsdgen.DefaultOptions...)
		if *verbose {
			cfg.Option(xsdgen.LogOutput(log.New(os.Stderr, "", 0)), xsdgen.LogLevel(5))
		}
		out = []byte(cfg.Compile(root, *rootName) + "\n")
	}

	if *output == "" {
		fmt.Print(string(out))
		return nil
	}
	return os.WriteFile(*output, out, 0666)
}

// describe walks a dotted property path from the root and attaches
// text as the description of the node it names. An empty path names
// the root itself.
func describe(root *schema.Node, path, text string) bool {
	n := root
	if path != "" {
		for _, part := range strings.Split(path, ".") {
			if n = n.Property(part); n == nil {
				return false
			}
		}
	}
	n.Describe(text)
	return true
}
