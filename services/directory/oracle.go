package directory

// IsAttested reports whether the (kind, natural key) pair is attested by an
// authoritative registry listing. Self-registered and internal entries never
// attest a key. Evaluated once at registration time; later imports reach
// already-registered providers through the importer's re-verification scan
// instead.
func (s *DefaultDirectoryService) IsAttested(kind, naturalKey string) (bool, error) {
	if naturalKey == "" {
		return false, nil
	}
	return s.Listings.ExistsAuthoritative(kind, naturalKey)
}
