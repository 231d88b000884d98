package repository

import (
	"context"
	"sync"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

// SalesDataMemoryRepository guarda os documentos em memória, com a mesma semântica
// de merge do Firestore. Usado em desenvolvimento local e nos testes.
type SalesDataMemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

func NewSalesDataMemoryRepository() *SalesDataMemoryRepository {
	return &SalesDataMemoryRepository{
		docs: make(map[string]map[string]any),
	}
}

func (r *SalesDataMemoryRepository) GetByDate(_ context.Context, date string) (domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[date]
	if !ok {
		return nil, nil
	}
	return domain.Document(deepCopy(doc).(map[string]any)), nil
}

func (r *SalesDataMemoryRepository) MergeByDate(_ context.Context, date string, data domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[date]
	if !ok {
		doc = make(map[string]any)
	}
	r.docs[date] = mergeDeep(doc, map[string]any(data))
	return nil
}

func (r *SalesDataMemoryRepository) Ping(_ context.Context) error {
	return nil
}

func (r *SalesDataMemoryRepository) Close() error {
	return nil
}

// mergeDeep sobrescreve em dst as folhas presentes em src, preservando as demais.
// Um objeto vazio em src é folha.
func mergeDeep(dst, src map[string]any) map[string]any {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)

		switch {
		case srcIsMap && len(srcMap) == 0:
			dst[k] = make(map[string]any)
		case srcIsMap && dstIsMap:
			dst[k] = mergeDeep(dstMap, srcMap)
		case srcIsMap:
			dst[k] = mergeDeep(make(map[string]any), srcMap)
		default:
			dst[k] = deepCopy(v)
		}
	}
	return dst
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	default:
		return v
	}
}
