package domain

// UserTotal is one row of the total-per-user aggregation: how many duties a
// user has logged, grouped by the stored user string. Users deleted from the
// registry after logging duties still appear here.
type UserTotal struct {
	User  string
	Total int64
}

// UserDateCount is one row of the per-user-per-date aggregation. Date is the
// UTC calendar date (YYYY-MM-DD) of the duty timestamp. Dates with no duties
// for a user are absent — dense grids are filled by the consumer.
type UserDateCount struct {
	User  string
	Date  string
	Count int64
}
