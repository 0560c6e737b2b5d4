package settings

const (
	keyBookingSampleClientID     = "BOOKING_SAMPLE_CLIENT_ID"
	keyBookingSampleTenantID     = "BOOKING_SAMPLE_TENANT_ID"
	keyBookingSampleClientSecret = "BOOKING_SAMPLE_CLIENT_SECRET"
)

// BookingSampleSettings is the credential bundle for the Microsoft Graph
// bookings sample application.
type BookingSampleSettings struct {
	ClientID     string
	TenantID     string
	ClientSecret string
}

// BookingSample reads the booking sample client ID, tenant ID, and client
// secret from the .env file in the working directory.
func BookingSample() (BookingSampleSettings, error) {
	return Source{}.BookingSample()
}

// BookingSample reads the booking sample credential bundle from this source.
func (s Source) BookingSample() (BookingSampleSettings, error) {
	values, err := s.read()
	if err != nil {
		return BookingSampleSettings{}, err
	}

	clientID, err := require(values, ServiceBookingSample, keyBookingSampleClientID)
	if err != nil {
		return BookingSampleSettings{}, err
	}
	tenantID, err := require(values, ServiceBookingSample, keyBookingSampleTenantID)
	if err != nil {
		return BookingSampleSettings{}, err
	}
	clientSecret, err := require(values, ServiceBookingSample, keyBookingSampleClientSecret)
	if err != nil {
		return BookingSampleSettings{}, err
	}

	return BookingSampleSettings{
		ClientID:     clientID,
		TenantID:     tenantID,
		ClientSecret: clientSecret,
	}, nil
}

// BookingSampleMap is the mapping form of BookingSample, under the client_id,
// tenant_id, and client_secret names.
func BookingSampleMap() (map[string]string, error) {
	return Source{}.BookingSampleMap()
}

// BookingSampleMap is the mapping form of Source.BookingSample.
func (s Source) BookingSampleMap() (map[string]string, error) {
	bundle, err := s.BookingSample()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"client_id":     bundle.ClientID,
		"tenant_id":     bundle.TenantID,
		"client_secret": bundle.ClientSecret,
	}, nil
}
