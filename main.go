package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"

	"github.com/FitrahHaque/hff/engine"
)

var Commands = [...]string{"compress", "decompress", "help"}

var stderr = colorable.NewColorableStderr()

func main() {
	application := os.Args[0]
	if len(os.Args) == 1 {
		fail("Please provide commands")
	}

	command, args := os.Args[1], os.Args[2:]
	switch command {
	case "--" + Commands[0], "--" + Commands[1]:
		command = strings.TrimPrefix(command, "--")
	case "--" + Commands[2], "-h", "-help":
		usage(application)
		return
	default:
		color.New(color.FgYellow).Fprintln(stderr, "No command is selected. Compression by default")
		command, args = Commands[0], os.Args[1:]
	}
	if countTrue(isCommand(args)) > 0 {
		fail("Specify a single command, before any flags")
	}

	cfg := engine.DefaultConfig()
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --%s [OPTIONS] <file(s)>\n", application, command)
		fmt.Fprintf(os.Stderr, "Flag:\n")
		fs.PrintDefaults()
	}
	algorithm := fs.String("algorithm", cfg.Algorithm, fmt.Sprintf("Which algorithm to use, choices include: \n\t%s", strings.Join(engine.Engines[:], ", ")))
	extension := fs.String("outfileext", cfg.Extension, "File extension used for the compressed file")
	deleteAfter := fs.Bool("delete", false, fmt.Sprintf("Delete file after %s", command))
	quiet := fs.Bool("quiet", false, "Do not show a progress bar")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fail(fmt.Sprintf("No file provided for %s", command))
	}
	files := strings.Split(strings.Join(fs.Args(), ","), ",")
	trimSpace(files)
	files = dropEmpty(files)

	cfg.Algorithm = *algorithm
	cfg.Extension = *extension
	cfg.Delete = *deleteAfter
	cfg.Progress = cfg.Progress && !*quiet

	var err error
	if command == Commands[0] {
		err = engine.CompressFiles(cfg, files)
	} else {
		err = engine.DecompressFiles(cfg, files)
	}
	if err != nil {
		fail(err.Error())
	}
}

func usage(application string) {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", application)
	fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
	fmt.Fprintf(os.Stderr, "Example:\n\t%s --compress notes.txt\n\t%s --decompress notes.txt%s\n", application, application, engine.DefaultExtension)
}

func fail(message string) {
	color.New(color.FgRed).Fprintln(stderr, message)
	os.Exit(1)
}

func isCommand(args []string) []bool {
	out := make([]bool, len(args))
	for i, arg := range args {
		for _, c := range Commands {
			if arg == "--"+c {
				out[i] = true
			}
		}
	}
	return out
}

func countTrue(commands []bool) int {
	count := 0
	for _, c := range commands {
		if c {
			count++
		}
	}
	return count
}

func trimSpace(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}

func dropEmpty(s []string) []string {
	out := s[:0]
	for _, v := range s {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
