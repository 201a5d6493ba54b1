package archive

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// QueryService scans the JSONL payload archive. It is read-only and safe to
// share; every call re-reads the files so fresh writes show up immediately.
type QueryService struct {
	dir string
}

func NewQueryService(dir string) *QueryService {
	return &QueryService{dir: dir}
}

// PayloadSummary is the listing shape returned to the workbench UI.
type PayloadSummary struct {
	TransactionID string `json:"transaction_id"`
	ProviderName  string `json:"provider_name"`
	Domain        string `json:"domain"`
	City          string `json:"city"`
	Items         int    `json:"items"`
	Timestamp     string `json:"timestamp"`
}

// Stats aggregates the archive for the stats endpoint.
type Stats struct {
	Payloads    int            `json:"payloads"`
	Items       int            `json:"items"`
	ByDomain    map[string]int `json:"by_domain"`
	ByProvider  map[string]int `json:"by_provider"`
}

func (s *QueryService) payloadFiles() ([]string, error) {
	pattern := filepath.Join(s.dir, "payloads_*.jsonl")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("listing archive files: %w", err)
	}
	return files, nil
}

func (s *QueryService) scan(ctx context.Context, visit func(model.CatalogGenerated) bool) error {
	files, err := s.payloadFiles()
	if err != nil {
		return err
	}
	for _, fpath := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := os.Open(fpath)
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 1024*1024), 32*1024*1024)
		for scanner.Scan() {
			var evt model.CatalogGenerated
			if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
				continue // tolerate partial lines from concurrent appends
			}
			if !visit(evt) {
				f.Close()
				return nil
			}
		}
		f.Close()
	}
	return nil
}

// ListPayloads returns summaries with limit/offset paging, newest files as
// written (file order is date order).
func (s *QueryService) ListPayloads(ctx context.Context, limit, offset int) ([]PayloadSummary, error) {
	summaries := []PayloadSummary{}
	skipped := 0
	err := s.scan(ctx, func(evt model.CatalogGenerated) bool {
		if skipped < offset {
			skipped++
			return true
		}
		if len(summaries) >= limit {
			return false
		}
		summaries = append(summaries, PayloadSummary{
			TransactionID: evt.TransactionID,
			ProviderName:  evt.ProviderName,
			Domain:        evt.Domain,
			City:          evt.City,
			Items:         evt.Items,
			Timestamp:     evt.Timestamp,
		})
		return true
	})
	return summaries, err
}

// GetPayload returns the full archived event for a transaction ID. The last
// matching record wins, matching regeneration order.
func (s *QueryService) GetPayload(ctx context.Context, transactionID string) (*model.CatalogGenerated, error) {
	var found *model.CatalogGenerated
	err := s.scan(ctx, func(evt model.CatalogGenerated) bool {
		if evt.TransactionID == transactionID {
			copied := evt
			found = &copied
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, os.ErrNotExist
	}
	return found, nil
}

// GetStats aggregates payload counts per domain and provider.
func (s *QueryService) GetStats(ctx context.Context) (Stats, error) {
	stats := Stats{ByDomain: map[string]int{}, ByProvider: map[string]int{}}
	err := s.scan(ctx, func(evt model.CatalogGenerated) bool {
		stats.Payloads++
		stats.Items += evt.Items
		stats.ByDomain[evt.Domain]++
		stats.ByProvider[evt.ProviderName]++
		return true
	})
	return stats, err
}
