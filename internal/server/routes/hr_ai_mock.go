package routes

import (
	_ "embed"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
)

//go:embed mockdata/ororatech.json
var ororatechData []byte

//go:embed mockdata/hochtief.json
var hochtiefData []byte

var hrAiMockCounter atomic.Uint64

// CompanyHrAiMockHandler serves canned registry analysis documents while the
// commercial API integration is pending. Responses alternate between the two
// datasets so clients see both a startup and a listed corporation.
func CompanyHrAiMockHandler(c echo.Context) error {
	datasets := [][]byte{ororatechData, hochtiefData}
	next := hrAiMockCounter.Add(1) - 1
	return c.JSONBlob(http.StatusOK, datasets[next%uint64(len(datasets))])
}
