// Command anvilarchive packs a world directory into a compressed archive,
// or unpacks one back into a world directory.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/anvilkit/anvil/archive"
)

func main() {
	var (
		mode   string
		unpack bool
		src    string
		dst    string
	)
	flag.StringVar(&mode, "mode", "fast", "pack mode: fast (lz4) or archival (zstd)")
	flag.BoolVar(&unpack, "unpack", false, "unpack an archive instead of packing one")
	flag.StringVar(&src, "src", "", "pack: world directory to read; unpack: archive file to read")
	flag.StringVar(&dst, "dst", "", "pack: archive file to write; unpack: world directory to write")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if src == "" || dst == "" {
		log.Error("both -src and -dst are required")
		os.Exit(2)
	}

	var packMode archive.Mode
	switch mode {
	case "fast":
		packMode = archive.ModeFast
	case "archival":
		packMode = archive.ModeArchival
	default:
		log.Error("unknown mode", "mode", mode)
		os.Exit(2)
	}

	if unpack {
		if err := runUnpack(src, dst, packMode); err != nil {
			log.Error("unpack failed", "error", err)
			os.Exit(1)
		}
		log.Info("unpacked", "archive", src, "dest", dst, "mode", packMode.String())
		return
	}

	if err := runPack(src, dst, packMode); err != nil {
		log.Error("pack failed", "error", err)
		os.Exit(1)
	}
	log.Info("packed", "world", src, "archive", dst, "mode", packMode.String())
}

func runPack(worldDir, archivePath string, mode archive.Mode) error {
	out, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer out.Close()

	return archive.Pack(out, worldDir, mode)
}

func runUnpack(archivePath, worldDir string, mode archive.Mode) error {
	in, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer in.Close()

	return archive.Unpack(in, worldDir, mode)
}
