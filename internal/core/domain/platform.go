package domain

// Platform is a device family a campaign targets, e.g. "android".
type Platform struct {
	ID   int64
	Name string
}
