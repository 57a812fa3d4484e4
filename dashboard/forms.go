package dashboard

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/pkg/appcatalog"
	"github.com/l3montree-dev/appcatalog/utils"
	"github.com/shopspring/decimal"
)

const defaultPageSize = 10

var contentRatings = []string{"Everyone", "Teen", "Mature 17+", "Adults only 18+"}

// listFilter keeps the raw form values so they can be rendered back into the form
type listFilter struct {
	CategoryQuery string
	CategoryID    string
	MinRating     string
	MaxPrice      string
	ContentRating string
	Page          int
	PageSize      int
}

func parseListFilter(values url.Values) listFilter {
	f := listFilter{
		CategoryQuery: strings.TrimSpace(values.Get("category_query")),
		CategoryID:    strings.TrimSpace(values.Get("category_id")),
		MinRating:     strings.TrimSpace(values.Get("min_rating")),
		MaxPrice:      strings.TrimSpace(values.Get("max_price")),
		ContentRating: strings.TrimSpace(values.Get("content_rating")),
		Page:          1,
		PageSize:      defaultPageSize,
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		f.Page = p
	}
	if s, err := strconv.Atoi(values.Get("page_size")); err == nil && s > 0 && s <= 100 {
		f.PageSize = s
	}
	return f
}

// Query converts the filter into an api query
func (f listFilter) Query() (appcatalog.AppQuery, error) {
	q := appcatalog.AppQuery{
		ContentRating: f.ContentRating,
		Page:          f.Page,
		PageSize:      f.PageSize,
	}
	if f.CategoryID != "" {
		id, err := strconv.ParseInt(f.CategoryID, 10, 64)
		if err != nil {
			return q, fmt.Errorf("invalid category")
		}
		q.CategoryID = id
	}
	if f.MinRating != "" {
		r, err := parseFiniteFloat(f.MinRating)
		if err != nil {
			return q, fmt.Errorf("minimum rating must be a number")
		}
		// 0 is the slider default and means no filter
		if r > 0 {
			q.MinRating = utils.Ptr(r)
		}
	}
	if f.MaxPrice != "" {
		p, err := decimal.NewFromString(f.MaxPrice)
		if err != nil {
			return q, fmt.Errorf("maximum price must be a number")
		}
		if p.IsPositive() {
			q.MaxPrice = &p
		}
	}
	return q, nil
}

// values returns the query string for the filter on another page
func (f listFilter) values(page int) url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("category_query", f.CategoryQuery)
	set("category_id", f.CategoryID)
	set("min_rating", f.MinRating)
	set("max_price", f.MaxPrice)
	set("content_rating", f.ContentRating)
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(f.PageSize))
	return v
}

// appForm holds the fields of the add and edit forms
type appForm struct {
	AppID         string
	AppName       string
	Rating        string
	RatingCount   string
	Installs      string
	Price         string
	Currency      string
	ContentRating string
	DeveloperID   string
	Categories    string
	Free          bool
}

func parseAppForm(values url.Values) appForm {
	return appForm{
		AppID:         strings.TrimSpace(values.Get("app_id")),
		AppName:       strings.TrimSpace(values.Get("app_name")),
		Rating:        strings.TrimSpace(values.Get("rating")),
		RatingCount:   strings.TrimSpace(values.Get("rating_count")),
		Installs:      strings.TrimSpace(values.Get("installs")),
		Price:         strings.TrimSpace(values.Get("price")),
		Currency:      strings.TrimSpace(values.Get("currency")),
		ContentRating: strings.TrimSpace(values.Get("content_rating")),
		DeveloperID:   strings.TrimSpace(values.Get("developer_id")),
		Categories:    values.Get("categories"),
		Free:          values.Get("free") == "on" || values.Get("free") == "true",
	}
}

func appFormFromDTO(app dtos.AppDTO) appForm {
	form := appForm{
		AppID:         app.AppID,
		AppName:       app.AppName,
		Rating:        strconv.FormatFloat(app.Rating, 'f', -1, 64),
		RatingCount:   strconv.FormatInt(app.RatingCount, 10),
		Installs:      strconv.FormatInt(app.Installs, 10),
		Price:         app.Price.String(),
		Currency:      app.Currency,
		ContentRating: app.ContentRating,
		Categories:    strings.Join(app.Categories, ", "),
		Free:          app.Free,
	}
	if app.DeveloperID != nil {
		form.DeveloperID = strconv.FormatInt(*app.DeveloperID, 10)
	}
	return form
}

// parseFiniteFloat rejects NaN and Inf, which strconv accepts
func parseFiniteFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

func parseOptionalInt(field, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	return n, nil
}

// apply writes the form fields onto req. Fields the form does not show are left untouched.
func (f appForm) apply(req *dtos.AppUpdateRequest) error {
	req.AppName = f.AppName
	req.Currency = f.Currency
	req.ContentRating = f.ContentRating
	req.Free = f.Free

	if f.Rating != "" {
		r, err := parseFiniteFloat(f.Rating)
		if err != nil {
			return fmt.Errorf("rating must be a number")
		}
		req.Rating = r
	}
	var err error
	if req.RatingCount, err = parseOptionalInt("rating count", f.RatingCount); err != nil {
		return err
	}
	if req.Installs, err = parseOptionalInt("installs", f.Installs); err != nil {
		return err
	}

	req.Price = decimal.Zero
	if f.Price != "" {
		p, err := decimal.NewFromString(f.Price)
		if err != nil {
			return fmt.Errorf("price must be a number")
		}
		req.Price = p
	}

	req.DeveloperID = nil
	if f.DeveloperID != "" {
		id, err := strconv.ParseInt(f.DeveloperID, 10, 64)
		if err != nil {
			return fmt.Errorf("developer id must be a whole number")
		}
		req.DeveloperID = &id
	}

	req.Categories = utils.Filter(utils.Map(strings.Split(f.Categories, ","), strings.TrimSpace), func(c string) bool { return c != "" })
	return nil
}

func (f appForm) CreateRequest() (dtos.AppCreateRequest, error) {
	req := dtos.AppCreateRequest{AppID: f.AppID}
	if err := f.apply(&req.AppUpdateRequest); err != nil {
		return req, err
	}
	return req, nil
}
