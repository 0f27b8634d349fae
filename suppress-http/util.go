package suppress_http

// PathSegments splits a URL path into its non-empty slash-delimited segments.
//
// Examples:
//   - "/user/profile" → ["user", "profile"]
//   - "/user/" → ["user"]
//   - "/" → []
//   - "//user" → ["user"]
func PathSegments(path string) []string {
	segments := []string{}
	start := 0
	end := 0
	for end < len(path) {
		if path[end] == '/' {
			if end > start {
				segments = append(segments, path[start:end])
			}
			start = end + 1
		}
		end++
	}
	if end > start {
		segments = append(segments, path[start:end])
	}
	return segments
}

// BasePath returns "/" plus the first segment of the path, or "/" when the
// path has no segments. This is the key used to select a sub-table.
func BasePath(path string) string {
	segments := PathSegments(path)
	if len(segments) == 0 {
		return "/"
	}
	return "/" + segments[0]
}
