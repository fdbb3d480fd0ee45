// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organisation.go -destination=../mocks/mock_organisation_repository.go -package=mocks OrganisationRepositoryIface
//go:generate mockgen -source=./agent.go -destination=../mocks/mock_agent_repository.go -package=mocks AgentRepositoryIface
//go:generate mockgen -source=./lead.go -destination=../mocks/mock_lead_repository.go -package=mocks LeadRepositoryIface
//go:generate mockgen -source=./category.go -destination=../mocks/mock_category_repository.go -package=mocks CategoryRepositoryIface
//go:generate mockgen -source=./activity_log.go -destination=../mocks/mock_activity_log_repository.go -package=mocks ActivityLogRepositoryIface
