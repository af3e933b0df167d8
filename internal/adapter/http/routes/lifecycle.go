package routes

import (
	"talentbruecke/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCandidates = "/candidates"
	PathEmployers  = "/employers"
	PathQuotes     = "/quotes"
	PathInterviews = "/interviews"
	PathDocuments  = "/documents"
)

func addLifecycleRoutes(
	rg *gin.RouterGroup,
	verificationHandler *handlers.VerificationHandler,
	documentHandler *handlers.DocumentHandler,
	pipelineHandler *handlers.PipelineHandler,
	quoteHandler *handlers.QuoteHandler,
	interviewHandler *handlers.InterviewHandler,
) {
	candidates := rg.Group(PathCandidates)
	{
		candidates.PUT("/:candidate_id/profile", verificationHandler.UpdateProfile)
		candidates.GET("/:candidate_id/checklist", verificationHandler.GetChecklist)
		candidates.POST("/:candidate_id/verification/submit", verificationHandler.SubmitForReview)
		candidates.POST("/:candidate_id/verification/withdraw", verificationHandler.Withdraw)
		candidates.PATCH("/:candidate_id/verification", verificationHandler.SetStatus)

		candidates.POST("/:candidate_id/documents", documentHandler.Upload)
		candidates.GET("/:candidate_id/documents", documentHandler.ListByCandidate)
	}

	employers := rg.Group(PathEmployers)
	{
		employers.GET("/:employer_id/pipeline", pipelineHandler.ListByEmployer)
		employers.POST("/:employer_id/pipeline/:candidate_id", pipelineHandler.AddToPool)
		employers.PATCH("/:employer_id/pipeline/:candidate_id", pipelineHandler.Move)
		employers.POST("/:employer_id/pipeline/:candidate_id/quotes", quoteHandler.Request)
		employers.POST("/:employer_id/interviews", interviewHandler.Schedule)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:quote_id", quoteHandler.GetByID)
		quotes.PATCH("/:quote_id/resolve", quoteHandler.Resolve)
		quotes.PATCH("/:quote_id/select", quoteHandler.SelectOption)
		quotes.POST("/:quote_id/pay", quoteHandler.Pay)
	}

	interviews := rg.Group(PathInterviews)
	{
		interviews.GET("/:interview_id", interviewHandler.GetByID)
		interviews.PATCH("/:interview_id/confirm", interviewHandler.Confirm)
		interviews.PATCH("/:interview_id/complete", interviewHandler.Complete)
		interviews.PATCH("/:interview_id/cancel", interviewHandler.Cancel)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.DELETE("/:document_id", documentHandler.Delete)
		documents.PATCH("/:document_id/review", documentHandler.Review)
	}
}
