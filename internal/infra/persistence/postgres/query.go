package postgres

import (
	"strings"

	"leadhub/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into an ILIKE substring pattern.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(search)) + "%"
}

// paginate applies a normalized pagination window; the ordering column is qualified with table.
func paginate(db *gorm.DB, table string, page repository.Pagination) *gorm.DB {
	return db.
		Order(table + "." + page.OrderClause()).
		Offset(page.Skip).
		Limit(page.Take)
}

func lockForUpdate() clause.Expression {
	return clause.Locking{Strength: clause.LockingStrengthUpdate}
}
