package core

// APIClient is the root of a tree of specialized clients for the core
// resources of the OpenWMS API.
type APIClient interface {
	// Roles returns a specialized client for Role management.
	Roles() RolesClient
}

type apiClient struct {
	// rolesClient is a specialized client for Role management.
	rolesClient RolesClient
}

// NewAPIClient returns an APIClient. Root URL and credentials are not bound
// here; every operation takes them in a CallContext.
func NewAPIClient(allowInsecure bool) APIClient {
	return &apiClient{
		rolesClient: NewRolesClient(allowInsecure),
	}
}

func (a *apiClient) Roles() RolesClient {
	return a.rolesClient
}
