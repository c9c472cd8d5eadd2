package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/rs/zerolog"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	_, err := newApp(&stdout, &stderr).Parse(args)
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "octdump.yaml")
	td.Require(t).CmpNoError(os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "format: base64\nlog_level: debug\n"))
	td.CmpNoError(t, err)
	td.Cmp(t, cfg, Config{Format: formatBase64, LogLevel: "debug", MaxData: "64KiB"})
	td.Cmp(t, cfg.Level(), zerolog.DebugLevel)
	td.Cmp(t, cfg.MaxDataBytes(), uint64(64<<10))

	cfg, err = LoadConfig(writeConfig(t, ""))
	td.CmpNoError(t, err)
	td.Cmp(t, cfg, DefaultConfig())

	_, err = LoadConfig(writeConfig(t, "colour: red\n"))
	td.CmpError(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	td.Cmp(t, err, td.ErrorIs(os.ErrNotExist))
}

func TestConfigValidate(t *testing.T) {
	td.CmpNoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Format = "octal"
	td.CmpError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	td.CmpError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxData = "lots"
	td.CmpError(t, cfg.Validate())
}

func TestDataFormat(t *testing.T) {
	data := []byte{0x01, 0xfe, 0x7f}

	cfg := DefaultConfig()
	td.Cmp(t, cfg.FormatData(data), "01fe7f")
	got, err := cfg.ParseData("01fe7f")
	td.CmpNoError(t, err)
	td.Cmp(t, got, data)

	cfg.Format = formatBase64
	td.Cmp(t, cfg.FormatData(data), "Af5/")
	got, err = cfg.ParseData("Af5/")
	td.CmpNoError(t, err)
	td.Cmp(t, got, data)

	_, err = cfg.ParseData("!!")
	td.CmpError(t, err)
}

func TestEncodeCommand(t *testing.T) {
	stdout, _, err := run(t, "encode", "u16", "258")
	td.CmpNoError(t, err)
	td.Cmp(t, stdout, "0201\n")

	stdout, _, err = run(t, "--format=base64", "encode", "addr", "1.2.3.4")
	td.CmpNoError(t, err)
	td.Cmp(t, stdout, "BAQDAgE=\n")

	_, _, err = run(t, "encode", "nope", "1")
	td.CmpError(t, err)

	_, _, err = run(t, "encode", "usize", "70000")
	td.Cmp(t, err, td.Smuggle(func(err error) string { return err.Error() }, td.Contains("failed to encode usize")))
}

func TestDecodeCommand(t *testing.T) {
	stdout, _, err := run(t, "decode", "str", "02006869")
	td.CmpNoError(t, err)
	td.Cmp(t, stdout, "hi\n")

	stdout, _, err = run(t, "decode", "unit")
	td.CmpNoError(t, err)
	td.Cmp(t, stdout, "()\n")

	_, _, err = run(t, "decode", "bool", "02")
	td.CmpError(t, err)

	_, _, err = run(t, "decode", "u8", "zz")
	td.CmpError(t, err)

	path := writeConfig(t, "max_data: 1B\n")
	_, _, err = run(t, "--config", path, "decode", "u16", "0201")
	td.Cmp(t, err, td.Smuggle(func(err error) string { return err.Error() }, td.Contains("more than the limit")))
}

func TestSizesCommand(t *testing.T) {
	stdout, _, err := run(t, "sizes")
	td.CmpNoError(t, err)
	td.Cmp(t, stdout, td.Contains("TYPE"))
	td.Cmp(t, stdout, td.Contains("addrport     27 B\n"))
	td.Cmp(t, stdout, td.Contains("str          unsized\n"))
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level=debug", "encode", "u8", "1")
	td.CmpNoError(t, err)
	td.Cmp(t, stderr, td.Contains("encoded"))

	_, stderr, err = run(t, "encode", "u8", "1")
	td.CmpNoError(t, err)
	td.Cmp(t, stderr, "")

	_, _, err = run(t, "--log-level=loud", "encode", "u8", "1")
	td.CmpError(t, err)
}
