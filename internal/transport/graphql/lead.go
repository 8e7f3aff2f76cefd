package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/internal/transport/graphql/dataloader"
	leadsvc "github.com/ledgerline/ledgerline-backend/internal/service/lead"
)

func (t *typeRegistry) leadFields() graphql.Fields {
	return graphql.Fields{
		"id":             {Type: graphql.NewNonNull(graphql.ID)},
		"companyId":      {Type: graphql.NewNonNull(graphql.ID)},
		"name":           {Type: graphql.NewNonNull(graphql.String)},
		"email":          {Type: graphql.String},
		"phone":          {Type: graphql.String},
		"companyName":    {Type: graphql.String},
		"source":         {Type: graphql.String},
		"status":         {Type: graphql.NewNonNull(leadStatusEnum)},
		"estimatedValue": {Type: decimalScalar},
		"assignedTo": {
			Type: t.user,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				l, ok := source[domain.Lead](p)
				if !ok || l.AssignedTo == nil {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.UserByID.Load(p.Context, *l.AssignedTo)), nil
			},
		},
		"convertedToCustomerId": {
			Type: graphql.ID,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				l, ok := source[domain.Lead](p)
				if !ok || l.ConvertedToCustomerID == nil {
					return nil, nil
				}
				return l.ConvertedToCustomerID.String(), nil
			},
		},
		"convertedToCustomer": {
			Type: t.customer,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				l, ok := source[domain.Lead](p)
				if !ok || l.ConvertedToCustomerID == nil {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.CustomerByID.Load(p.Context, *l.ConvertedToCustomerID)), nil
			},
		},
		"convertedAt":  {Type: graphql.DateTime},
		"customFields": {Type: jsonScalar},
		"opportunities": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.opportunity))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				l, ok := source[domain.Lead](p)
				if !ok {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.OpportunitiesByLeadID.Load(p.Context, l.ID)), nil
			},
		},
		"activities": {
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t.activity))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				l, ok := source[domain.Lead](p)
				if !ok {
					return nil, nil
				}
				activities, err := t.r.leads.ListActivities(p.Context, l.ID)
				if err != nil {
					return nil, t.present(p, err)
				}
				return activities, nil
			},
		},
		"createdAt": {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt": {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) opportunityFields() graphql.Fields {
	return graphql.Fields{
		"id":                {Type: graphql.NewNonNull(graphql.ID)},
		"leadId":            {Type: graphql.NewNonNull(graphql.ID)},
		"name":              {Type: graphql.NewNonNull(graphql.String)},
		"stage":             {Type: graphql.NewNonNull(opportunityStageEnum)},
		"amount":            {Type: graphql.NewNonNull(decimalScalar)},
		"probability":       {Type: graphql.NewNonNull(graphql.Int)},
		"expectedCloseDate": {Type: graphql.DateTime},
		"createdAt":         {Type: graphql.NewNonNull(graphql.DateTime)},
		"updatedAt":         {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) activityFields() graphql.Fields {
	return graphql.Fields{
		"id":     {Type: graphql.NewNonNull(graphql.ID)},
		"leadId": {Type: graphql.NewNonNull(graphql.ID)},
		"userId": {Type: graphql.NewNonNull(graphql.ID)},
		"user": {
			Type: t.user,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				a, ok := source[domain.LeadActivity](p)
				if !ok {
					return nil, nil
				}
				loaders := dataloader.FromContext(p.Context)
				return deferred(loaders.UserByID.Load(p.Context, a.UserID)), nil
			},
		},
		"type":      {Type: graphql.NewNonNull(activityTypeEnum)},
		"body":      {Type: graphql.NewNonNull(graphql.String)},
		"createdAt": {Type: graphql.NewNonNull(graphql.DateTime)},
	}
}

func (t *typeRegistry) convertLeadResultFields() graphql.Fields {
	return graphql.Fields{
		"lead":     {Type: graphql.NewNonNull(t.lead)},
		"customer": {Type: graphql.NewNonNull(t.customer)},
	}
}

func (t *typeRegistry) leadQueries() graphql.Fields {
	return graphql.Fields{
		"lead": {
			Type: t.lead,
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				l, err := t.r.leads.GetLead(p.Context, id)
				if err != nil {
					return nil, t.present(p, err)
				}
				return l, nil
			},
		},
		"leads": {
			Type: graphql.NewNonNull(t.leadConnection),
			Args: graphql.FieldConfigArgument{
				"status": {Type: leadStatusEnum},
				"first":  {Type: graphql.Int},
				"after":  {Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				var status *domain.LeadStatus
				if s, ok := p.Args["status"].(domain.LeadStatus); ok {
					status = &s
				}
				page, err := t.r.leads.ListLeads(p.Context, leadsvc.ListLeadsInput{
					Status: status,
					First:  argInt(p.Args, "first", 0),
					After:  argStringPtr(p.Args, "after"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return newConnection(page, func(l domain.Lead) domain.Cursor {
					return domain.Cursor{CreatedAt: l.CreatedAt, ID: l.ID}
				}), nil
			},
		},
	}
}

func (t *typeRegistry) leadMutations() graphql.Fields {
	return graphql.Fields{
		"createLead": {
			Type: graphql.NewNonNull(t.lead),
			Args: graphql.FieldConfigArgument{
				"name":           {Type: graphql.NewNonNull(graphql.String)},
				"email":          {Type: graphql.String},
				"phone":          {Type: graphql.String},
				"companyName":    {Type: graphql.String},
				"source":         {Type: graphql.String},
				"estimatedValue": {Type: decimalScalar},
				"assignedTo":     {Type: graphql.ID},
				"customFields":   {Type: jsonScalar},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				estimatedValue, err := argDecimalPtr(p.Args, "estimatedValue")
				if err != nil {
					return nil, t.present(p, err)
				}
				assignedTo, err := argIDPtr(p.Args, "assignedTo")
				if err != nil {
					return nil, t.present(p, err)
				}
				l, err := t.r.leads.CreateLead(p.Context, leadsvc.CreateLeadInput{
					Name:           argString(p.Args, "name"),
					Email:          argStringPtr(p.Args, "email"),
					Phone:          argStringPtr(p.Args, "phone"),
					CompanyName:    argStringPtr(p.Args, "companyName"),
					Source:         argStringPtr(p.Args, "source"),
					EstimatedValue: estimatedValue,
					AssignedTo:     assignedTo,
					CustomFields:   argJSON(p.Args, "customFields"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return l, nil
			},
		},
		"updateLead": {
			Type: graphql.NewNonNull(t.lead),
			Args: graphql.FieldConfigArgument{
				"id":             {Type: graphql.NewNonNull(graphql.ID)},
				"name":           {Type: graphql.String},
				"email":          {Type: graphql.String},
				"phone":          {Type: graphql.String},
				"companyName":    {Type: graphql.String},
				"source":         {Type: graphql.String},
				"status":         {Type: leadStatusEnum},
				"estimatedValue": {Type: decimalScalar},
				"assignedTo":     {Type: graphql.ID},
				"customFields":   {Type: jsonScalar},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				estimatedValue, err := argDecimalPtr(p.Args, "estimatedValue")
				if err != nil {
					return nil, t.present(p, err)
				}
				assignedTo, err := argIDPtr(p.Args, "assignedTo")
				if err != nil {
					return nil, t.present(p, err)
				}
				var status *domain.LeadStatus
				if s, ok := p.Args["status"].(domain.LeadStatus); ok {
					status = &s
				}
				l, err := t.r.leads.UpdateLead(p.Context, leadsvc.UpdateLeadInput{
					LeadID:         id,
					Name:           argStringPtr(p.Args, "name"),
					Email:          argStringPtr(p.Args, "email"),
					Phone:          argStringPtr(p.Args, "phone"),
					CompanyName:    argStringPtr(p.Args, "companyName"),
					Source:         argStringPtr(p.Args, "source"),
					Status:         status,
					EstimatedValue: estimatedValue,
					AssignedTo:     assignedTo,
					CustomFields:   argJSONPtr(p.Args, "customFields"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return l, nil
			},
		},
		"deleteLead": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.leads.DeleteLead(p.Context, id); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
		"convertLead": {
			Type: graphql.NewNonNull(t.convertLeadResult),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				result, err := t.r.leads.ConvertLead(p.Context, id)
				if err != nil {
					return nil, t.present(p, err)
				}
				return result, nil
			},
		},
		"createOpportunity": {
			Type: graphql.NewNonNull(t.opportunity),
			Args: graphql.FieldConfigArgument{
				"leadId":            {Type: graphql.NewNonNull(graphql.ID)},
				"name":              {Type: graphql.NewNonNull(graphql.String)},
				"stage":             {Type: opportunityStageEnum},
				"amount":            {Type: graphql.NewNonNull(decimalScalar)},
				"probability":       {Type: graphql.Int},
				"expectedCloseDate": {Type: graphql.DateTime},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				leadID, err := argID(p.Args, "leadId")
				if err != nil {
					return nil, t.present(p, err)
				}
				amount, err := argDecimal(p.Args, "amount")
				if err != nil {
					return nil, t.present(p, err)
				}
				var stage *domain.OpportunityStage
				if s, ok := p.Args["stage"].(domain.OpportunityStage); ok {
					stage = &s
				}
				o, err := t.r.leads.CreateOpportunity(p.Context, leadsvc.CreateOpportunityInput{
					LeadID:            leadID,
					Name:              argString(p.Args, "name"),
					Stage:             stage,
					Amount:            amount,
					Probability:       argInt(p.Args, "probability", 0),
					ExpectedCloseDate: argTimePtr(p.Args, "expectedCloseDate"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return o, nil
			},
		},
		"updateOpportunity": {
			Type: graphql.NewNonNull(t.opportunity),
			Args: graphql.FieldConfigArgument{
				"id":                {Type: graphql.NewNonNull(graphql.ID)},
				"name":              {Type: graphql.String},
				"stage":             {Type: opportunityStageEnum},
				"amount":            {Type: decimalScalar},
				"probability":       {Type: graphql.Int},
				"expectedCloseDate": {Type: graphql.DateTime},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				amount, err := argDecimalPtr(p.Args, "amount")
				if err != nil {
					return nil, t.present(p, err)
				}
				var stage *domain.OpportunityStage
				if s, ok := p.Args["stage"].(domain.OpportunityStage); ok {
					stage = &s
				}
				o, err := t.r.leads.UpdateOpportunity(p.Context, leadsvc.UpdateOpportunityInput{
					OpportunityID:     id,
					Name:              argStringPtr(p.Args, "name"),
					Stage:             stage,
					Amount:            amount,
					Probability:       argIntPtr(p.Args, "probability"),
					ExpectedCloseDate: argTimePtr(p.Args, "expectedCloseDate"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return o, nil
			},
		},
		"deleteOpportunity": {
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id": {Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id, err := argID(p.Args, "id")
				if err != nil {
					return nil, t.present(p, err)
				}
				if err := t.r.leads.DeleteOpportunity(p.Context, id); err != nil {
					return nil, t.present(p, err)
				}
				return true, nil
			},
		},
		"addLeadActivity": {
			Type: graphql.NewNonNull(t.activity),
			Args: graphql.FieldConfigArgument{
				"leadId": {Type: graphql.NewNonNull(graphql.ID)},
				"type":   {Type: graphql.NewNonNull(activityTypeEnum)},
				"body":   {Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				leadID, err := argID(p.Args, "leadId")
				if err != nil {
					return nil, t.present(p, err)
				}
				activityType, _ := p.Args["type"].(domain.ActivityType)
				a, err := t.r.leads.AddActivity(p.Context, leadsvc.AddActivityInput{
					LeadID: leadID,
					Type:   activityType,
					Body:   argString(p.Args, "body"),
				})
				if err != nil {
					return nil, t.present(p, err)
				}
				return a, nil
			},
		},
	}
}
