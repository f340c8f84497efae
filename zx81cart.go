// This file is part of zx81cart.
//
// zx81cart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zx81cart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zx81cart.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/jetsetilly/zx81cart/archivefs"
	"github.com/jetsetilly/zx81cart/builder"
	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/logger"
	"github.com/jetsetilly/zx81cart/modalflag"
	"github.com/jetsetilly/zx81cart/patcher"
	"github.com/jetsetilly/zx81cart/programloader"
	"github.com/jetsetilly/zx81cart/tape"
	"github.com/jetsetilly/zx81cart/version"
)

// exit values.
const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

// usageError is used for problems with the command line. the program exits
// with exitUsage rather than exitFailure.
const usageError = "usage: %v"

// number of log entries shown after a failure when the log is not being
// echoed.
const failureTail = 10

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch the program with the arguments. returns the exit value.
func launch(output io.Writer, args []string) int {
	logger.Clear()
	echo(false)

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("BUILD", "TAPE", "WAV", "SITES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitUsage
	}

	switch md.Mode() {
	case "BUILD":
		err = build(md)
	case "TAPE":
		err = decodeTape(md)
	case "WAV":
		err = encodeTape(md)
	case "SITES":
		err = sites(md)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	// help messages are not errors
	if errors.Is(err, errHelp) {
		return exitOK
	}

	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		if curated.Has(err, usageError) {
			return exitUsage
		}
		if !echoing {
			logger.Tail(output, failureTail)
		}
		return exitFailure
	}

	return exitOK
}

var errHelp = errors.New("help")

// parse the flags for a mode. flag errors are usage errors.
func parse(md *modalflag.Modes) error {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return errHelp
	case modalflag.ParseError:
		return curated.Errorf(usageError, err)
	}
	return nil
}

// readFile reads the named file, which may be inside a zip archive.
func readFile(filename string) ([]byte, error) {
	r, _, err := archivefs.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(programloader.FileNotFound, filename)
		}
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	return io.ReadAll(r)
}

// the log is being echoed to stdout.
var echoing bool

func echo(log bool) {
	echoing = log
	if log {
		logger.EchoTo(os.Stdout)
	} else {
		logger.EchoTo(nil)
	}
}

func build(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Programs can be .p files, .p.zx7 files, or tape recordings in .wav or .mp3\nformat. Programs inside zip files are named as though the zip file was a\ndirectory. A cartridge with more than one program uses the menu loader.")

	basePath := md.AddString("b", "", "base ROM (8192 bytes)")
	loaderPath := md.AddString("l", "", "loader for the selected variant")
	outputPath := md.AddString("o", "", "output file (default <program>.rom or multi.rom)")
	compact := md.AddBool("s", false, "compact menu block (program count only)")
	slots := md.AddIntList("slots", "patch slots in the menu loader (default: search for LD HL,$2000)")
	save := md.AddBool("save", false, "save -b, -l and -s as the defaults")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	err := parse(md)
	if err != nil {
		return err
	}

	echo(*log)

	files := md.RemainingArgs()
	if len(files) == 0 {
		return curated.Errorf(usageError, "no program files (.p, .p.zx7, .wav, .mp3)")
	}

	pref, err := loadPreferences()
	if err != nil {
		return err
	}

	mode := builder.ModeFor(len(files))

	cfg := builder.Config{
		BaseName:    resolve(*basePath, &pref.base, defaultBase),
		CompactMenu: *compact || pref.compactMenu.Get().(bool),
		Slots:       *slots,
	}

	if mode == builder.Menu {
		cfg.MenuLoaderName = resolve(*loaderPath, &pref.menuLoader, defaultMenuLoader)
		cfg.MenuLoader, err = readFile(cfg.MenuLoaderName)
	} else {
		cfg.LoaderName = resolve(*loaderPath, &pref.loader, defaultLoader)
		cfg.Loader, err = readFile(cfg.LoaderName)
	}
	if err != nil {
		return err
	}

	cfg.Base, err = readFile(cfg.BaseName)
	if err != nil {
		return err
	}

	if *save {
		err = pref.update(*basePath, *loaderPath, mode == builder.Menu, *compact)
		if err != nil {
			return err
		}
	}

	programs := make([]*programloader.Loader, 0, len(files))
	for _, f := range files {
		pl := programloader.NewLoader(f)
		err := pl.Load()
		if err != nil {
			return err
		}
		programs = append(programs, pl)
	}

	res, err := builder.Build(cfg, programs)
	if err != nil {
		return err
	}

	if *outputPath == "" {
		*outputPath = builder.OutputName(files)
	}

	err = res.WriteFile(*outputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "OK -> %s\n", *outputPath)
	res.Report(md.Output)

	return nil
}

func decodeTape(md *modalflag.Modes) error {
	md.NewMode()

	outputPath := md.AddString("o", "", "output file (default <recording>.p)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	err := parse(md)
	if err != nil {
		return err
	}

	echo(*log)

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(usageError, "a single tape recording (.wav or .mp3) is required")
	}

	fn := md.GetArg(0)
	if !tape.IsRecording(fn) {
		return curated.Errorf(usageError, fmt.Sprintf("%s is not a tape recording", fn))
	}

	pl := programloader.NewLoader(fn)
	err = pl.Load()
	if err != nil {
		return err
	}

	if *outputPath == "" {
		*outputPath = programloader.DisplayName(fn) + ".p"
	}

	err = os.WriteFile(*outputPath, pl.Data, 0o644)
	if err != nil {
		return curated.Errorf(builder.WriteFailure, *outputPath, err)
	}

	fmt.Fprintf(md.Output, "OK -> %s\n", *outputPath)
	fmt.Fprintf(md.Output, "  Program: %s (%d bytes)\n", pl.Name, len(pl.Data))

	return nil
}

func encodeTape(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	outputPath := md.AddString("o", "", "output file (default <program>.wav)")
	name := md.AddString("name", "", "program name on tape (default <program>)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	err := parse(md)
	if err != nil {
		return err
	}

	echo(*log)

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(usageError, "a single program file (.p) is required")
	}

	pl := programloader.NewLoader(md.GetArg(0))
	if pl.PreCompressed {
		return curated.Errorf(usageError, "compressed programs can not be saved to tape")
	}
	err = pl.Load()
	if err != nil {
		return err
	}

	if *name == "" {
		*name = strings.ToUpper(pl.Name)
	}
	if *outputPath == "" {
		*outputPath = programloader.DisplayName(pl.Filename) + ".wav"
	}

	prog := tape.NewProgram(*name, pl.Data)

	f, err := os.Create(*outputPath)
	if err != nil {
		return curated.Errorf(builder.WriteFailure, *outputPath, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(builder.WriteFailure, *outputPath, err)
		}
	}()

	err = tape.Encode(f, prog)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "OK -> %s\n", *outputPath)
	fmt.Fprintf(md.Output, "  Program: %s\n", prog)

	return nil
}

func sites(md *modalflag.Modes) error {
	md.NewMode()

	err := parse(md)
	if err != nil {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(usageError, "a single loader file is required")
	}

	code, err := readFile(md.GetArg(0))
	if err != nil {
		return err
	}

	s := patcher.Scan(code)
	fmt.Fprintf(md.Output, "%s: %d bytes, %d patch sites\n", md.GetArg(0), len(code), len(s))
	for i, site := range s {
		fmt.Fprintf(md.Output, "  %d: %v\n", i+1, site)
	}

	return nil
}
