package dto

// ListParams are the query parameters shared by the paginated list endpoints.
type ListParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}
