package derive

// HasMore reports whether rows remain beyond the page that starts at
// offset and holds up to limit rows.
func HasMore(offset, limit, total int) bool {
	return offset+limit < total
}
