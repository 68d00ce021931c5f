package startups

import "context"

// FounderOf expone el founder de una startup.
// Lo consumen accessrequests y access vía interfaces (evita ciclos de imports).
func (s *Service) FounderOf(ctx context.Context, startupID string) (string, error) {
	st, err := s.GetByID(ctx, startupID)
	if err != nil {
		return "", err
	}
	return st.FounderUserID, nil
}

// StartupIDOfFounder es la lectura inversa que usa identity.Resolver.
func (s *Service) StartupIDOfFounder(ctx context.Context, founderUserID string) (string, error) {
	st, err := s.repo.GetByFounder(ctx, founderUserID)
	if err != nil {
		return "", err
	}
	return st.ID, nil
}
