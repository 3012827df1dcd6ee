package postgres

import (
	"fmt"
	"strings"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	"github.com/digitalbuddiesspune/stylegenz/internal/repository"
)

// columnFor maps backend-agnostic field paths onto SQL expressions. Open
// attribute paths address keys of the product_info JSONB column; the keys
// come from the filter compiler's own tables, never raw request input.
func columnFor(path string) (string, bool) {
	if key, ok := domain.IsAttrPath(path); ok {
		return fmt.Sprintf("product_info->>'%s'", key), true
	}

	switch path {
	case domain.FieldCategory, domain.FieldSubCategory, domain.FieldSubSubCategory,
		domain.FieldTitle, domain.FieldPrice:
		return path, true
	}
	return "", false
}

// buildWhere renders a FilterSpec into a WHERE clause and its bound
// arguments, numbering placeholders from startIndex. An empty spec yields an
// empty clause.
func buildWhere(spec domain.FilterSpec, startIndex int) (string, []any) {
	var conditions []string
	var args []any
	argIndex := startIndex

	for _, cond := range spec.Conditions {
		column, ok := columnFor(cond.Path)
		if !ok {
			continue
		}

		switch cond.Kind {
		case domain.EqualsFold:
			conditions = append(conditions, fmt.Sprintf("LOWER(%s) = LOWER($%d)", column, argIndex))
			args = append(args, cond.Value)
			argIndex++

		case domain.ContainsFold:
			conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", column, argIndex))
			args = append(args, "%"+escapeLike(cond.Value)+"%")
			argIndex++

		case domain.RangeInclusive:
			conditions = append(conditions, fmt.Sprintf("%s >= $%d", column, argIndex))
			args = append(args, cond.Min)
			argIndex++
			if cond.Max != nil {
				conditions = append(conditions, fmt.Sprintf("%s <= $%d", column, argIndex))
				args = append(args, *cond.Max)
				argIndex++
			}
		}
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search terms.
func escapeLike(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, "%", `\%`)
	v = strings.ReplaceAll(v, "_", `\_`)
	return v
}

// groupExpr resolves a field path to a GROUP BY expression.
func groupExpr(path string) (string, error) {
	column, ok := columnFor(path)
	if !ok {
		return "", fmt.Errorf("cannot group by %q", path)
	}
	return column, nil
}

// orderBy renders sort keys into an ORDER BY clause, dropping any field the
// column map does not recognize.
func orderBy(sort []repository.SortKey) string {
	var terms []string
	for _, key := range sort {
		column, ok := columnFor(key.Field)
		if !ok && key.Field == "id" {
			column, ok = "id", true
		}
		if !ok {
			continue
		}
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		terms = append(terms, column+" "+dir)
	}
	if len(terms) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(terms, ", ")
}
