package batch

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// WriteScript persists a compiled job's text at its target path using the
// compiler's encoding convention. The write goes through a temp file plus
// rename so an existing script survives any failure, and unencodable runes
// are substituted rather than dropped so the byte stream never desyncs.
func (c *Compiler) WriteScript(job *Job) error {
	if job == nil {
		return errors.New("nil job")
	}

	enc, err := scriptEncoding(c.opts.Encoding)
	if err != nil {
		return err
	}

	data, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(job.ScriptText))
	if err != nil {
		return fmt.Errorf("encode script text: %w", err)
	}

	tmpPath := job.ScriptPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp script: %w", err)
	}
	if err := os.Rename(tmpPath, job.ScriptPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp script: %w", err)
	}
	return nil
}

func scriptEncoding(name string) (encoding.Encoding, error) {
	switch name {
	case "shift-jis":
		return japanese.ShiftJIS, nil
	case "utf-8":
		return unicode.UTF8, nil
	default:
		return nil, fmt.Errorf("unsupported script encoding %q", name)
	}
}
