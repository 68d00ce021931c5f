package privatedata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"venture-hub/internal/access"
)

// Store es el acceso tipado a las secciones privadas. No chequea permisos:
// lecturas pasan por access.Engine y escrituras por Engine.IsOwner en el handler.
type Store struct {
	repo Repository
	now  func() time.Time
}

func NewStore(repo Repository) *Store {
	return &Store{
		repo: repo,
		now:  time.Now,
	}
}

// GetOrCreate es idempotente: la primera lectura persiste el documento por defecto.
func (s *Store) GetOrCreate(ctx context.Context, startupID string, section access.Section) (Record, error) {
	startupID = strings.TrimSpace(startupID)
	if startupID == "" {
		return Record{}, ErrInvalidInput
	}
	def, err := New(section)
	if err != nil {
		return Record{}, err
	}
	data, err := json.Marshal(def)
	if err != nil {
		return Record{}, fmt.Errorf("encode default %s: %w", section, err)
	}

	now := s.now().UTC()
	row, err := s.repo.GetOrCreate(ctx, Row{
		StartupID: startupID,
		Section:   section,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Record{}, fmt.Errorf("get or create %s: %w", section, err)
	}
	return toRecord(row)
}

// Update aplica un JSON merge sobre el documento actual: los campos ausentes no se tocan,
// los objetos anidados se mezclan campo a campo y las listas se reemplazan enteras.
func (s *Store) Update(ctx context.Context, startupID string, section access.Section, patch []byte) (Record, error) {
	patch = bytes.TrimSpace(patch)
	if len(patch) == 0 || patch[0] != '{' {
		return Record{}, fmt.Errorf("%w: body must be a JSON object", ErrInvalidInput)
	}

	rec, err := s.GetOrCreate(ctx, startupID, section)
	if err != nil {
		return Record{}, err
	}

	merged, err := mergeJSON(rec.Document, patch)
	if err != nil {
		return Record{}, err
	}
	doc, err := New(section)
	if err != nil {
		return Record{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return Record{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if n, ok := doc.(normalizer); ok {
		n.normalize()
	}
	rec.Document = doc
	if err := rec.Document.Validate(); err != nil {
		return Record{}, err
	}

	data, err := json.Marshal(rec.Document)
	if err != nil {
		return Record{}, fmt.Errorf("encode %s: %w", section, err)
	}
	rec.UpdatedAt = s.now().UTC()
	if err := s.repo.Save(ctx, Row{
		StartupID: rec.StartupID,
		Section:   rec.Section,
		Data:      data,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}); err != nil {
		return Record{}, fmt.Errorf("save %s: %w", section, err)
	}
	return rec, nil
}

// Load devuelve el documento tipado, p.ej. Load[*Financials](ctx, store, id).
func Load[D Document](ctx context.Context, s *Store, startupID string) (D, error) {
	var zero D
	rec, err := s.GetOrCreate(ctx, startupID, zero.Section())
	if err != nil {
		return zero, err
	}
	doc, ok := rec.Document.(D)
	if !ok {
		return zero, fmt.Errorf("unexpected document type %T for %s", rec.Document, rec.Section)
	}
	return doc, nil
}

// normalizer lo implementan los documentos con listas: null vuelve a [].
type normalizer interface {
	normalize()
}

// mergeJSON mezcla patch sobre current a nivel JSON. Decodificar directo sobre el struct
// reutilizaría los elementos viejos de las listas.
func mergeJSON(current Document, patch []byte) ([]byte, error) {
	base, err := toTree(current)
	if err != nil {
		return nil, err
	}
	var p map[string]any
	dec := json.NewDecoder(bytes.NewReader(patch))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidInput)
	}
	return json.Marshal(mergeTree(base, p))
}

func toTree(doc Document) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", doc.Section(), err)
	}
	var out map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", doc.Section(), err)
	}
	return out, nil
}

// mergeTree: objetos se mezclan recursivamente, cualquier otro valor (listas incluidas) reemplaza.
func mergeTree(dst, src map[string]any) map[string]any {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		cur, curOK := dst[k].(map[string]any)
		if ok && curOK {
			dst[k] = mergeTree(cur, sub)
			continue
		}
		dst[k] = v
	}
	return dst
}

func toRecord(row Row) (Record, error) {
	doc, err := New(row.Section)
	if err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal(row.Data, doc); err != nil {
		return Record{}, fmt.Errorf("decode %s: %w", row.Section, err)
	}
	return Record{
		StartupID: row.StartupID,
		Section:   row.Section,
		Document:  doc,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
