package services

// ServiceContainer bundles all service facades for injection into the
// HTTP handlers.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	User        UserSvcFacade
	Role        RoleSvcFacade
	Visibility  VisibilitySvcFacade
	Store       StoreSvcFacade
	Category    CategorySvcFacade
	Catalog     CatalogSvcFacade
	Client      ClientSvcFacade
	Appointment AppointmentSvcFacade
}
