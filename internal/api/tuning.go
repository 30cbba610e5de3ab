package api

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/notebot/internal/tuning"
)

type TuningEntry struct {
	Tab        string   `json:"tab"`
	Name       string   `json:"name"`
	Value      float64  `json:"value"`
	Default    float64  `json:"default"`
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Persistent bool     `json:"persistent"`
}

type TuningRequest struct {
	Value *float64 `json:"value"`
}

func newTuningEntry(entry *tuning.Entry) TuningEntry {
	result := TuningEntry{
		Tab:        entry.Tab,
		Name:       entry.Name,
		Value:      entry.Get(),
		Default:    entry.Default,
		Persistent: entry.Persistent,
	}
	// infinite bounds cannot be encoded in JSON
	if !math.IsInf(entry.Min, 0) {
		lower := entry.Min
		result.Min = &lower
	}
	if !math.IsInf(entry.Max, 0) {
		upper := entry.Max
		result.Max = &upper
	}
	return result
}

func registerTuningEndpoints(rest *echo.Echo, dashboard *tuning.Dashboard) {
	group := rest.Group("/tuning")

	group.GET("/", func(c echo.Context) error {
		var data []TuningEntry
		for _, entry := range dashboard.Entries() {
			data = append(data, newTuningEntry(entry))
		}
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
	group.GET("/:"+urlParamTab+"/:"+urlParamName+"/", func(c echo.Context) error {
		tab, name := c.Param(urlParamTab), c.Param(urlParamName)
		entry, ok := dashboard.Get(tab, name)
		if !ok {
			return returnNotFound(c, tab+"/"+name)
		}
		return c.JSONPretty(http.StatusOK, newTuningEntry(entry), indentationChar)
	})
	group.PUT("/:"+urlParamTab+"/:"+urlParamName+"/", func(c echo.Context) error {
		tab, name := c.Param(urlParamTab), c.Param(urlParamName)
		entry, ok := dashboard.Get(tab, name)
		if !ok {
			return returnNotFound(c, tab+"/"+name)
		}
		var request TuningRequest
		if err := c.Bind(&request); err != nil {
			return returnBadRequest(c, err.Error())
		}
		if request.Value == nil {
			return returnBadRequest(c, "'value' is required")
		}
		entry.Set(*request.Value)
		return c.JSONPretty(http.StatusOK, newTuningEntry(entry), indentationChar)
	})
}
