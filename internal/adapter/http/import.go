package httpadapter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

const sourceCSV = "csv"

// importRequest is the JSON form of an import: rows already split into
// header-keyed objects.
type importRequest struct {
	Platform string           `json:"platform"`
	Data     []map[string]any `json:"data"`
}

type importResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	domain.ImportResult
}

// handleImport bulk-loads platform exports. The body is either raw CSV,
// a multipart form carrying a "file" part, or a JSON importRequest. Rows
// without a campaign or a parseable date are skipped and counted.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxImportBytes)
	platform := r.URL.Query().Get("platform")

	var (
		rows []map[string]any
		err  error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		var req importRequest
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err = dec.Decode(&req); err != nil {
			h.importError(w, err, "invalid JSON")
			return
		}
		if req.Data == nil {
			h.writeError(w, http.StatusBadRequest, "missing data")
			return
		}
		if platform == "" {
			platform = req.Platform
		}
		rows = req.Data
	case "multipart/form-data":
		file, _, ferr := r.FormFile("file")
		if ferr != nil {
			h.importError(w, ferr, "missing file")
			return
		}
		defer file.Close()
		if rows, err = readCSV(file); err != nil {
			h.importError(w, err, "invalid CSV")
			return
		}
	default:
		if rows, err = readCSV(r.Body); err != nil {
			h.importError(w, err, "invalid CSV")
			return
		}
	}

	source := sourceCSV
	if platform != "" {
		source = platform
	}
	cmds := make([]port.IngestCommand, 0, len(rows))
	for _, row := range rows {
		id, date, patch := normalizeRow(row)
		cmds = append(cmds, port.IngestCommand{
			Source:     source,
			CampaignID: id,
			Date:       date,
			Patch:      patch,
		})
	}

	res, err := h.ingest.Import(r.Context(), cmds)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, importResponse{
		Success:      true,
		Message:      fmt.Sprintf("Imported %d rows", res.Imported),
		ImportResult: res,
	})
}

func (h *Handler) importError(w http.ResponseWriter, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.writeError(w, http.StatusRequestEntityTooLarge, "import too large")
		return
	}
	h.writeError(w, http.StatusBadRequest, msg)
}

// readCSV reads a header row followed by data rows into header-keyed
// maps. Columns with a blank header are dropped.
func readCSV(r io.Reader) ([]map[string]any, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []map[string]any
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]any, len(header))
		for i, v := range rec {
			if i < len(header) && header[i] != "" {
				row[header[i]] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
