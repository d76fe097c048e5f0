// Command sm83gen builds the SM83 opcode fragments and prints them as Go
// dispatch functions, or dumps the fragment of a single instruction.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/assemble"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/isa"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/render"
	"github.com/FabianRolfMatthiasNoll/sm83gen/internal/synth"
)

func main() {
	out := flag.String("o", "-", "output file, - for stdout")
	pkg := flag.String("pkg", "cpu", "package name of the generated file")
	check := flag.Bool("check", false, "fail if -o differs from what would be generated")
	dump := flag.String("dump", "", "print the fragment of one opcode (e.g. 0x3C or cb:0x7C) or mnemonic and exit")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("sm83gen: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tables, err := assemble.Build(ctx, synth.New())
	if err != nil {
		log.Fatal(err)
	}

	if *dump != "" {
		f, err := lookup(tables, *dump)
		if err != nil {
			log.Fatal(err)
		}
		frag := tables.Get(f.prefixed, f.op)
		fmt.Print(f)
		fmt.Println(frag)
		fmt.Println("--")
		fmt.Print(render.Fragment(frag))
		return
	}

	src, err := render.Tables(tables, *pkg)
	if err != nil {
		log.Fatal(err)
	}
	switch {
	case *out == "-":
		os.Stdout.Write(src)
	case *check:
		cur, err := os.ReadFile(*out)
		if err != nil {
			log.Fatal(err)
		}
		if !bytes.Equal(cur, src) {
			log.Fatalf("%s is stale; rerun sm83gen -o %s", *out, *out)
		}
	default:
		if err := os.WriteFile(*out, src, 0644); err != nil {
			log.Fatal(err)
		}
	}
}

type opcode struct {
	prefixed bool
	op       byte
	text     string
}

func (o opcode) String() string {
	if o.prefixed {
		return fmt.Sprintf("CB %02X  %s\n", o.op, o.text)
	}
	return fmt.Sprintf("%02X  %s\n", o.op, o.text)
}

// lookup accepts "0x3C", "cb:0x7C" or a table mnemonic such as "BIT 7,H".
func lookup(t *assemble.Tables, arg string) (opcode, error) {
	prefixed := false
	s := arg
	if len(s) > 3 && (s[:3] == "cb:" || s[:3] == "CB:") {
		prefixed, s = true, s[3:]
	}
	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		f := t.Get(prefixed, byte(n))
		if f == nil {
			return opcode{}, fmt.Errorf("no instruction at %s", arg)
		}
		return opcode{prefixed, byte(n), f.Mnemonic}, nil
	}
	d, err := isa.Lookup(arg)
	if err != nil {
		return opcode{}, err
	}
	return opcode{d.Prefixed, d.Opcode, d.Mnemonic}, nil
}
