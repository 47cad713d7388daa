package api

import (
	"net/http"

	"github.com/mineworks/grindflow/pkg/catalog"
)

// handleCatalog lists the equipment catalog, optionally filtered by
// category via ?category=.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	var types []catalog.EquipmentType
	if cat := r.URL.Query().Get("category"); cat != "" {
		types = s.catalog.ByCategory(catalog.Category(cat))
	} else {
		types = s.catalog.All()
	}

	resp := CatalogResponse{
		Equipment: make([]equipmentPayload, 0, len(types)),
		Count:     len(types),
	}
	for _, et := range types {
		resp.Equipment = append(resp.Equipment, equipmentPayload{
			Type:       et.Type,
			Label:      et.Label,
			Category:   string(et.Category),
			Ports:      et.Ports,
			Parameters: et.Parameters,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
