package apimodels

import (
	"fmt"
	"math"
)

// Response обертка одиночного ресурса
type Response struct {
	Data interface{} `json:"data"` //данные ответа
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Message string              `json:"message"`          //сообщение ошибки
	Errors  map[string][]string `json:"errors,omitempty"` //ошибки валидации по полям
}

// CollectionResponse обертка постраничного списка
type CollectionResponse struct {
	Data  interface{} `json:"data"`
	Links Links       `json:"links"`
	Meta  Meta        `json:"meta"`
}

type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type Meta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Message: message,
	}
}

func NewValidationError(field, message string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		Errors: map[string][]string{
			field: {message},
		},
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Data: data,
	}
}

// NewCollectionResponse собирает ссылки и метаданные страницы.
// itemCount количество записей на текущей странице, path адрес списка без параметров.
func NewCollectionResponse(data interface{}, itemCount int, pagination Pagination, total int64, path string) CollectionResponse {
	page, limit := pagination.GetPage()
	lastPage := int(math.Max(1, math.Ceil(float64(total)/float64(limit))))
	pageUrl := func(p int) string {
		return fmt.Sprintf("%s?page=%d", path, p)
	}

	links := Links{
		First: pageUrl(1),
		Last:  pageUrl(lastPage),
	}
	if page > 1 {
		prev := pageUrl(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageUrl(page + 1)
		links.Next = &next
	}

	meta := Meta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     limit,
		Total:       total,
	}
	if itemCount > 0 {
		from := (page-1)*limit + 1
		to := from + itemCount - 1
		meta.From = &from
		meta.To = &to
	}
	return CollectionResponse{
		Data:  data,
		Links: links,
		Meta:  meta,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Записей на странице
	Page  int `json:"page"`  // Страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func (r Pagination) GetOffset() int {
	page, limit := r.GetPage()
	return (page - 1) * limit
}
