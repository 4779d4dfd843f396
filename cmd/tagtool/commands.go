package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/halotag"
	"github.com/arloliu/halotag/archive"
	"github.com/arloliu/halotag/dump"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
	"github.com/arloliu/halotag/upgrade"
)

func (a *app) reporter() tag.Reporter {
	return tag.NewSlogReporter(a.logger)
}

func (a *app) decoderOptions() ([]tag.DecoderOption, error) {
	cm, err := a.cfg.charmap()
	if err != nil {
		return nil, err
	}

	return []tag.DecoderOption{tag.WithCharmap(cm)}, nil
}

func (a *app) encoderOptions() ([]tag.EncoderOption, error) {
	cm, err := a.cfg.charmap()
	if err != nil {
		return nil, err
	}

	return []tag.EncoderOption{tag.WithEncoderCharmap(cm), tag.WithChecksum(a.cfg.Checksum)}, nil
}

func (a *app) readAsset(path string) (tag.Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts, err := a.decoderOptions()
	if err != nil {
		return nil, err
	}

	asset, err := halotag.ProcessFile(f, a.reporter(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return asset, nil
}

func (a *app) inspect(args []string) error {
	flags := a.flags("inspect")
	mode := flags.String("format", "xml", "Output format: xml, spew, refs")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 {
		return errors.New("inspect requires one tag file")
	}

	asset, err := a.readAsset(flags.Arg(0))
	if err != nil {
		return err
	}

	switch *mode {
	case "xml":
		return dump.XML(a.stdout, asset)
	case "spew":
		_, err = fmt.Fprint(a.stdout, dump.Spew(asset))
		return err
	case "refs":
		for _, ref := range dump.References(asset) {
			if _, err := fmt.Fprintln(a.stdout, ref); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("unknown format: %s", *mode)
	}
}

func (a *app) roundtrip(args []string) error {
	flags := a.flags("roundtrip")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() == 0 {
		return errors.New("roundtrip requires at least one tag file")
	}

	encOpts, err := a.encoderOptions()
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range flags.Args() {
		if err := a.roundtripFile(path, encOpts); err != nil {
			a.logger.Error("round trip failed", "file", path, "error", err)
			failed++

			continue
		}
		a.logger.Info("round trip ok", "file", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed the round trip", failed, flags.NArg())
	}

	return nil
}

func (a *app) roundtripFile(path string, encOpts []tag.EncoderOption) error {
	original, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decOpts, err := a.decoderOptions()
	if err != nil {
		return err
	}
	asset, err := halotag.ProcessFile(bytes.NewReader(original), a.reporter(), decOpts...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := halotag.BuildAsset(&buf, asset, encOpts...); err != nil {
		return err
	}

	encoded := buf.Bytes()
	for i := range min(len(original), len(encoded)) {
		if original[i] != encoded[i] {
			return fmt.Errorf("re-encoded output differs at byte %d", i)
		}
	}
	if len(original) != len(encoded) {
		return fmt.Errorf("re-encoded output is %d bytes, original is %d", len(encoded), len(original))
	}

	return nil
}

func (a *app) upgrade(args []string) error {
	flags := a.flags("upgrade")
	flags.StringVar(&a.cfg.Target, "target", a.cfg.Target, "Target revision: LAMB, MLAB, BLM! or legacy, vista, retail")
	output := flags.String("o", "", "Output file")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 || *output == "" {
		return errors.New("upgrade requires -o and one tag file")
	}

	target, err := a.cfg.target()
	if err != nil {
		return err
	}
	u, err := upgrade.New(upgrade.WithTarget(target), upgrade.WithReporter(a.reporter()))
	if err != nil {
		return err
	}

	src, err := a.readAsset(flags.Arg(0))
	if err != nil {
		return err
	}
	dst, err := u.Upgrade(src)
	if err != nil {
		return fmt.Errorf("%s: %w", flags.Arg(0), err)
	}

	encOpts, err := a.encoderOptions()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := halotag.BuildAsset(&buf, dst, encOpts...); err != nil {
		return err
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		return err
	}

	a.logger.Info("upgraded", "file", flags.Arg(0), "output", *output, "target", target)

	return nil
}

func (a *app) pack(args []string) error {
	flags := a.flags("pack")
	flags.StringVar(&a.cfg.Compression, "compression", a.cfg.Compression, "Compression: None, Zstd, S2, LZ4")
	output := flags.String("o", "", "Output archive")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 || *output == "" {
		return errors.New("pack requires -o and one directory")
	}

	ct, err := a.cfg.compression()
	if err != nil {
		return err
	}
	w, err := archive.NewWriter(archive.WithCompression(ct))
	if err != nil {
		return err
	}

	root := flags.Arg(0)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		header, err := section.ParseTagHeader(data)
		if err != nil {
			a.logger.Warn("skipping file", "file", path, "error", err)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		return w.Add(tagPath(rel), header.Group, data)
	})
	if err != nil {
		return err
	}

	out, err := os.Create(*output)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	stats := w.Stats()
	a.logger.Info("packed", "entries", w.Len(), "output", *output,
		"compression", ct, "ratio", fmt.Sprintf("%.3f", stats.CompressionRatio()))

	return nil
}

func (a *app) openArchive(path string, verify bool) (*archive.Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return archive.Open(data, archive.WithVerify(verify))
}

func (a *app) unpack(args []string) error {
	flags := a.flags("unpack")
	flags.BoolVar(&a.cfg.Verify, "verify", a.cfg.Verify, "Verify entry digests")
	output := flags.String("o", "", "Output directory")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 || *output == "" {
		return errors.New("unpack requires -o and one archive")
	}

	r, err := a.openArchive(flags.Arg(0), a.cfg.Verify)
	if err != nil {
		return err
	}

	for _, e := range r.Entries() {
		name, err := fileName(e)
		if err != nil {
			return err
		}
		data, err := r.Read(e)
		if err != nil {
			return err
		}

		dst := filepath.Join(*output, name)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
		a.logger.Debug("extracted", "entry", e.Name(), "file", dst)
	}

	a.logger.Info("unpacked", "entries", r.Len(), "output", *output)

	return nil
}

func (a *app) list(args []string) error {
	flags := a.flags("list")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 {
		return errors.New("list requires one archive")
	}

	r, err := a.openArchive(flags.Arg(0), false)
	if err != nil {
		return err
	}
	for _, e := range r.Entries() {
		if _, err := fmt.Fprintf(a.stdout, "%016x %-4s %-4s %8d %8d %s\n",
			e.ID, e.Group, e.Compression, e.Size, e.StoredSize, e.Path); err != nil {
			return err
		}
	}

	return nil
}

// tagPath turns a file path relative to the tags directory into a tag path:
// backslash separated and without extension.
func tagPath(rel string) string {
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", `\`)
}

// fileName is the inverse of tagPath with the group code as extension.
func fileName(e archive.Entry) (string, error) {
	name := filepath.FromSlash(strings.ReplaceAll(e.Path, `\`, "/")) + "." + strings.TrimSpace(e.Group.String())
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("entry %s escapes the output directory", e.Name())
	}

	return name, nil
}
