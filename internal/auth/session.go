package auth

// State is the authentication state of a session.
type State int

const (
	StateAnonymous State = iota
	StateAwaitingTwoFactor
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAwaitingTwoFactor:
		return "awaiting-2fa"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session holds the identity of the currently authenticated user, or
// nothing. It is an explicit object passed into Core operations rather
// than process-global state, so callers own its lifetime. At most one
// identity is held at a time; while a two-factor exchange is pending the
// session also carries the outstanding challenge.
type Session struct {
	state   State
	email   string
	pending *Challenge
}

func NewSession() *Session {
	return &Session{state: StateAnonymous}
}

func (s *Session) State() State { return s.state }

// Email returns the identity the session is bound to. For an anonymous
// session it is empty; while awaiting two-factor it is the candidate
// identity, not yet authenticated.
func (s *Session) Email() string { return s.email }

func (s *Session) IsAuthenticated() bool { return s.state == StateAuthenticated }

func (s *Session) authenticate(email string) {
	s.state = StateAuthenticated
	s.email = email
	s.pending = nil
}

func (s *Session) awaitCode(email string, ch *Challenge) {
	s.state = StateAwaitingTwoFactor
	s.email = email
	s.pending = ch
}

func (s *Session) reset() {
	s.state = StateAnonymous
	s.email = ""
	s.pending = nil
}
