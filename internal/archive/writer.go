package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// Writer appends generated payloads and validation rejections to dated
// JSONL files under the archive directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) appendRecord(prefix string, record any) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}
	fpath := filepath.Join(w.dir, fmt.Sprintf("%s_%s.jsonl", prefix, time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// WritePayload archives one generated-catalog event.
func (w *Writer) WritePayload(evt model.CatalogGenerated) error {
	return w.appendRecord("payloads", evt)
}

// WriteRejection records a validation rejection with its envelope metadata.
func (w *Writer) WriteRejection(meta map[string]string, scope, reason string) error {
	record := map[string]any{
		"scope":          scope,
		"reason":         reason,
		"transaction_id": meta["transaction_id"],
		"message_id":     meta["message_id"],
		"timestamp":      time.Now().UTC().Format(time.RFC3339Nano),
	}
	return w.appendRecord("rejections", record)
}
