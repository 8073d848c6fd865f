package config

// Embed the IANA time zone database so time.LoadLocation works on machines
// without system zoneinfo (Windows desktops in particular).
import _ "time/tzdata"
