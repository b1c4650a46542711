package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

const (
	MsgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	MsgInvalidRequestBody = "некорректное тело запроса"
	MsgMissingBlockID     = "отсутствует ID блока"
)

var ErrInvalidDate = errors.New("handlers: invalid date")

// ParseDate разбирает дату YYYY-MM-DD в полночь UTC
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

// DateVar дата из переменной пути {date}
func DateVar(r *http.Request) (time.Time, error) {
	return ParseDate(mux.Vars(r)["date"])
}

// BlockIDVar id блока из переменной пути {blockId}
func BlockIDVar(r *http.Request) (string, bool) {
	id := mux.Vars(r)["blockId"]
	return id, id != ""
}

// BoolQuery булев query-параметр; отсутствующий или некорректный - false
func BoolQuery(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
