package drive

// Session supplies the bearer access token for Graph requests. The session
// is owned by the host; the fetcher only reads the current token at call
// time, so token rotation between calls is the host's concern.
type Session interface {
	AccessToken() string
}

// StaticToken is a Session backed by a plain token string.
type StaticToken string

// AccessToken implements Session.
func (t StaticToken) AccessToken() string {
	return string(t)
}
