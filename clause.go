package querybuilder

import (
	"fmt"
	"strings"
)

type ClauseType string

const (
	ClauseType_Select  ClauseType = "SELECT"
	ClauseType_From    ClauseType = "FROM"
	ClauseType_Insert  ClauseType = "INSERT INTO"
	ClauseType_Values  ClauseType = "VALUES"
	ClauseType_Update  ClauseType = "UPDATE"
	ClauseType_Set     ClauseType = "SET"
	ClauseType_Delete  ClauseType = "DELETE FROM"
	ClauseType_Where   ClauseType = "WHERE"
	ClauseType_And     ClauseType = "AND"
	ClauseType_Or      ClauseType = "OR"
	ClauseType_Limit   ClauseType = "LIMIT"
	ClauseType_OrderBy ClauseType = "ORDER BY"
)

// clause is one rendered fragment of a statement. text already carries its
// keyword.
type clause struct {
	typ  ClauseType
	text string
}

func (c clause) String() string {
	return c.text
}

func joinClauses(cs []clause) string {
	sections := make([]string, 0, len(cs))
	for _, c := range cs {
		sections = append(sections, c.String())
	}
	return strings.Join(sections, " ")
}

func limitClause(limit *uint) []clause {
	if limit == nil {
		return nil
	}
	return []clause{{typ: ClauseType_Limit, text: fmt.Sprintf("%s %d", ClauseType_Limit, *limit)}}
}

func orderByClause(orderBy OrderBy) []clause {
	if orderBy == nil {
		return nil
	}
	return []clause{{typ: ClauseType_OrderBy, text: orderBy.String()}}
}
