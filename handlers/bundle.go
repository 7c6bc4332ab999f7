package handlers

import (
	lawyerRepo "legalaid/database/repository/lawyer"
	ngoRepo "legalaid/database/repository/ngo"
)

// HandlerBundle aggregates the handlers and the repositories the route-level
// auth middleware needs.
type HandlerBundle struct {
	Lawyer    *LawyerHandler
	NGO       *NGOHandler
	Directory *DirectoryHandler
	Admin     *AdminHandler
	Storage   *StorageHandler

	LawyerRepo lawyerRepo.LawyerRepository
	NGORepo    ngoRepo.NGORepository
}
