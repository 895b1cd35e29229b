package config

// DefaultConfigHCL returns the documented starter configuration written by
// `guttergauge init`
func DefaultConfigHCL() string {
	return `# guttergauge configuration
version = 1

catalog {
  # A CSV/SQLite file, or a directory searched with include/exclude globs.
  # Relative paths are resolved against this file's directory.
  path    = "gutters.csv"
  include = ["**/*.csv", "**/*.db", "**/*.sqlite"]
  exclude = ["archive/**"]

  # How long a loaded catalog is reused before the files are read again.
  cache_ttl = "10s"

  # Table read from SQLite catalogs.
  table = "gutters"
}

search {
  # QLD, NSW, VIC, TAS, SA, WA, NT or ACT
  region = "QLD"

  # All, Quad, Square or Half Round
  category = "All"

  # Number of ranked profiles to show.
  top_n = 5

  # Exit with status 1 when the best match is below this tier
  # (excellent, good, fair or poor). Empty disables the check.
  min_tier = ""
}

output {
  # text, json, compact or markdown
  format = "text"

  # auto, always or never
  color = "auto"
}

access {
  # bcrypt hashes from ` + "`guttergauge hash-password`" + `.
  # The team password unlocks search; the admin password also shows buy prices.
  team_password_hash  = getenv("GUTTERGAUGE_TEAM_HASH", "")
  admin_password_hash = getenv("GUTTERGAUGE_ADMIN_HASH", "")
}

server {
  addr = "127.0.0.1:8080"
}
`
}
