package response

import "agency_backoffice/internal/usecase"

// SideEffectsResponse is embedded in every state-changing response. A failed
// email shows up here as emailSent=false plus emailError.
type SideEffectsResponse struct {
	EmailSent        bool   `json:"emailSent"`
	EmailError       string `json:"emailError,omitempty"`
	NotificationSent bool   `json:"notificationSent"`
}

func fromSideEffects(fx usecase.SideEffects) SideEffectsResponse {
	return SideEffectsResponse{
		EmailSent:        fx.EmailSent,
		EmailError:       fx.EmailError,
		NotificationSent: fx.NotificationSent,
	}
}

type BudgetResultResponse struct {
	Budget BudgetResponse `json:"budget"`
	SideEffectsResponse
}

func FromBudgetResult(r usecase.BudgetResult) BudgetResultResponse {
	return BudgetResultResponse{Budget: FromBudget(r.Budget), SideEffectsResponse: fromSideEffects(r.SideEffects)}
}

type ContractResultResponse struct {
	Contract ContractResponse `json:"contract"`
	Budget   BudgetResponse   `json:"budget"`
	SideEffectsResponse
}

func FromContractResult(r usecase.ContractResult) ContractResultResponse {
	return ContractResultResponse{
		Contract:            FromContract(r.Contract),
		Budget:              FromBudget(r.Budget),
		SideEffectsResponse: fromSideEffects(r.SideEffects),
	}
}

type PaymentLinkResponse struct {
	Payment PaymentResponse  `json:"payment"`
	Budget  BudgetResponse   `json:"budget"`
	Project *ProjectResponse `json:"project,omitempty"`
	SideEffectsResponse
}

func FromPaymentLinkResult(r usecase.PaymentLinkResult) PaymentLinkResponse {
	return PaymentLinkResponse{
		Payment:             FromPayment(r.Payment),
		Budget:              FromBudget(r.Budget),
		Project:             optionalProject(r.Project),
		SideEffectsResponse: fromSideEffects(r.SideEffects),
	}
}

type ConversionResponse struct {
	Project  ProjectResponse   `json:"project"`
	Payment  PaymentResponse   `json:"payment"`
	Budget   BudgetResponse    `json:"budget"`
	Client   *ClientResponse   `json:"client,omitempty"`
	Contract *ContractResponse `json:"contract,omitempty"`
	Replayed bool              `json:"replayed"`
	SideEffectsResponse
}

func FromConversionResult(r usecase.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Project:             FromProject(r.Project),
		Payment:             FromPayment(r.Payment),
		Budget:              FromBudget(r.Budget),
		Client:              optionalClient(r.Client),
		Contract:            optionalContract(r.Contract),
		Replayed:            r.Replayed,
		SideEffectsResponse: fromSideEffects(r.SideEffects),
	}
}

type PaymentEventResponse struct {
	Ignored bool                `json:"ignored"`
	Reason  string              `json:"reason,omitempty"`
	Result  *ConversionResponse `json:"result,omitempty"`
}

func FromPaymentEventResult(r usecase.PaymentEventResult) PaymentEventResponse {
	out := PaymentEventResponse{Ignored: r.Ignored, Reason: r.Reason}
	if r.Result != nil {
		conv := FromConversionResult(*r.Result)
		out.Result = &conv
	}
	return out
}

type ProgressResponse struct {
	Project  ProjectResponse `json:"project"`
	Replayed bool            `json:"replayed"`
	SideEffectsResponse
}

func FromProgressResult(r usecase.ProgressResult) ProgressResponse {
	return ProgressResponse{
		Project:             FromProject(r.Project),
		Replayed:            r.Replayed,
		SideEffectsResponse: fromSideEffects(r.SideEffects),
	}
}

type ScheduleResultResponse struct {
	Schedule    ScheduleResponse `json:"schedule"`
	Rescheduled bool             `json:"rescheduled"`
	SideEffectsResponse
}

func FromScheduleResult(r usecase.ScheduleResult) ScheduleResultResponse {
	return ScheduleResultResponse{
		Schedule:            FromSchedule(r.Schedule),
		Rescheduled:         r.Rescheduled,
		SideEffectsResponse: fromSideEffects(r.SideEffects),
	}
}
