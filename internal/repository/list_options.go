package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ListOptions carries the search/paging controls shared by every list screen.
type ListOptions struct {
	Search  string
	Limit   int
	OrderBy string
	Desc    bool
}

func applyListOptions(db *gorm.DB, opts ListOptions, searchColumns ...string) *gorm.DB {
	if opts.Search != "" && len(searchColumns) > 0 {
		conds := make([]string, 0, len(searchColumns))
		args := make([]interface{}, 0, len(searchColumns))
		for _, col := range searchColumns {
			conds = append(conds, fmt.Sprintf("%s ILIKE ?", col))
			args = append(args, "%"+opts.Search+"%")
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}
	if opts.OrderBy != "" {
		dir := "ASC"
		if opts.Desc {
			dir = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", opts.OrderBy, dir))
	}
	if opts.Limit > 0 {
		db = db.Limit(opts.Limit)
	}
	return db
}
