package server

// Server объединяет HTTP-сервера отдельных сущностей админского API.
type Server struct {
	CatalogServer
	SelectionServer

	adminToken string
}

func NewServer(
	catalogServer CatalogServer,
	selectionServer SelectionServer,
	adminToken string,
) Server {
	return Server{
		CatalogServer:   catalogServer,
		SelectionServer: selectionServer,
		adminToken:      adminToken,
	}
}
