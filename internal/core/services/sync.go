package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/portalcentro/centrorag/internal/core/domain"
	"github.com/portalcentro/centrorag/internal/core/ports/driven"
	"github.com/portalcentro/centrorag/internal/core/ports/driving"
	"github.com/portalcentro/centrorag/internal/logger"
)

var _ driving.SyncService = (*SyncService)(nil)

// localeDocType marks a document whose front matter describes a commercial
// unit. Documents with any other "tipo" are skipped silently.
const localeDocType = "Local Comercial"

// SyncService mirrors locale front matter into the relational store so
// structured queries never depend on the vector index being populated.
type SyncService struct {
	source     driven.DocumentSource
	normaliser driven.Normaliser
	locales    driven.LocaleStore
}

func NewSyncService(
	source driven.DocumentSource,
	normaliser driven.Normaliser,
	locales driven.LocaleStore,
) *SyncService {
	return &SyncService{
		source:     source,
		normaliser: normaliser,
		locales:    locales,
	}
}

// Sync walks the documents under root and upserts a row for every locale
// document. Malformed documents are logged and skipped; the walk aborts
// only on context cancellation.
func (s *SyncService) Sync(ctx context.Context, root string) (int, error) {
	logger.Section("Sync")

	paths, err := s.source.ListDocuments(ctx, root)
	if err != nil {
		return 0, fmt.Errorf("listing documents: %w", err)
	}
	logger.Info("Found %d documents under %s", len(paths), root)

	written := 0
	for _, path := range paths {
		locale, ok, err := s.extractLocale(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return written, ctx.Err()
			}
			logger.Error("skipping %s: %v", path, err)
			continue
		}
		if !ok {
			continue
		}

		if err := s.locales.Replace(ctx, locale); err != nil {
			if ctx.Err() != nil {
				return written, ctx.Err()
			}
			logger.Error("skipping %s: %v", path, err)
			continue
		}
		logger.Debug("Synced local %d from %s", locale.Numero, path)
		written++
	}

	logger.Info("Synced %d locales", written)
	return written, nil
}

// extractLocale reads a document and maps its front matter to a Locale.
// The second return is false when the document is not a locale record.
func (s *SyncService) extractLocale(ctx context.Context, path string) (domain.Locale, bool, error) {
	doc, err := s.source.ReadDocument(ctx, path)
	if err != nil {
		return domain.Locale{}, false, err
	}

	meta, err := s.normaliser.FrontMatter(doc.Content)
	if err != nil {
		return domain.Locale{}, false, fmt.Errorf("front matter: %w", err)
	}

	if metaString(meta, "tipo") != localeDocType {
		return domain.Locale{}, false, nil
	}

	numero, ok := metaInt(meta, "numero")
	if !ok {
		return domain.Locale{}, false, fmt.Errorf("locale document without a numeric %q field", "numero")
	}

	metros, _ := metaInt(meta, "metros_cuadrados")
	monto, _ := metaFloat(meta, "monto_arriendo_uf")

	locale := domain.Locale{
		Numero:          numero,
		NombreLocal:     metaString(meta, "nombre_local"),
		Piso:            metaString(meta, "piso"),
		MetrosCuadrados: metros,
		MontoArriendoUF: monto,
		Estado:          metaString(meta, "estado"),
		Arrendatario:    metaString(meta, "arrendatario"),
		Contrato:        metaString(meta, "contrato"),
		TieneBano:       metaBool(meta, "tiene_baño"),
		TieneBodega:     metaBool(meta, "tiene_bodega"),
		MedidorLuz:      metaBool(meta, "medidor_luz"),
		SourceFile:      path,
	}
	return locale, true, nil
}

// metaString returns the value as trimmed text, or "" when absent.
func metaString(meta map[string]any, key string) string {
	v, ok := meta[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func metaInt(meta map[string]any, key string) (int, bool) {
	switch t := meta[key].(type) {
	case int:
		return t, true
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	default:
		return 0, false
	}
}

func metaFloat(meta map[string]any, key string) (float64, bool) {
	switch t := meta[key].(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// metaBool accepts YAML booleans and the "Si"/"No" convention used in the
// locale documents.
func metaBool(meta map[string]any, key string) bool {
	switch t := meta[key].(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "si" || s == "sí" || s == "true" || s == "yes"
	default:
		return false
	}
}
