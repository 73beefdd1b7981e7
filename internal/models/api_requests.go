package models

// TableQuery carries the query parameters of a table request.
type TableQuery struct {
	Season string `validate:"omitempty,max=64,printascii"`
	Sort   string `validate:"omitempty,max=32,printascii"`
	Dir    string `validate:"omitempty,oneof=asc desc"`
}

// MatchQuery carries the query parameters of the match feed.
type MatchQuery struct {
	Season string `validate:"omitempty,max=64,printascii"`
	Limit  int    `validate:"gte=0,lte=500"`
}
