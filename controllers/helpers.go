package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func idParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp, the
// two shapes clients actually send.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// dateQuery reads the optional ?date= filter; nil means no filter.
func dateQuery(c *gin.Context) (*time.Time, error) {
	q := c.Query("date")
	if q == "" {
		return nil, nil
	}
	t, err := parseDate(q)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	return &t, nil
}

// dateOrNow parses a request-body date, defaulting to the current time.
func dateOrNow(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return parseDate(s)
}
