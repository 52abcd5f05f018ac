package response

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageQuery reads the page and per_page query parameters, falling back to
// page 1 of 20 and capping per_page at 100.
func PageQuery(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.QueryParam("per_page"))
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return page, pageSize
}

// Window clamps the [start, end) slice bounds of a page within a list of
// the given length.
func Window(page, pageSize, length int) (start, end int) {
	start = (page - 1) * pageSize
	if start > length {
		start = length
	}

	end = start + pageSize
	if end > length {
		end = length
	}

	return start, end
}
