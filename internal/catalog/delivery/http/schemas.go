package http

import (
	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/pkg/validator"
)

// Per-operation constraint tables. Adding a resource means adding entries
// here, not new code paths.

func bound(v float64) *float64 { return &v }

var productStatuses = []string{domain.StatusAvailable, domain.StatusPipeline}

var paginationFields = validator.Fields{
	"limit":  {Kind: validator.Integer, Min: bound(1)},
	"offset": {Kind: validator.Integer, Min: bound(0)},
}

func withPagination(fields validator.Fields) validator.Fields {
	merged := validator.Fields{}
	for name, rule := range paginationFields {
		merged[name] = rule
	}
	for name, rule := range fields {
		merged[name] = rule
	}
	return merged
}

// Products

var filterProductsSchema = validator.Schema{
	Query: withPagination(validator.Fields{
		"name":       {Kind: validator.String},
		"qTags":      {Kind: validator.String},
		"attributes": {Kind: validator.StringMap},
		"provider":   {Kind: validator.String},
		"status":     {Kind: validator.String, Enum: productStatuses},
	}),
}

var createProductSchema = validator.Schema{
	Body: validator.Fields{
		"sku":        {Kind: validator.String, Required: true, MinLen: 8, MaxLen: 8},
		"name":       {Kind: validator.String, Required: true, MaxLen: 50},
		"categoryID": {Kind: validator.Integer, Required: true, Min: bound(0)},
		"qTags":      {Kind: validator.StringList, Default: []string{}},
		"attributes": {Kind: validator.ListMap},
		"price":      {Kind: validator.Number, Required: true, Min: bound(0)},
		"imageURLs":  {Kind: validator.StringList, Default: []string{}},
		"providerID": {Kind: validator.Integer, Min: bound(0), Default: 0},
		"launchDate": {Kind: validator.Date},
		"stock":      {Kind: validator.Integer, Min: bound(0), Default: 0},
		"status":     {Kind: validator.String, Enum: productStatuses, Default: domain.StatusAvailable},
	},
}

var productKeySchema = validator.Schema{
	Params: validator.Fields{
		"sku": {Kind: validator.String, MinLen: 8, MaxLen: 8},
	},
}

// Update constraints carry no defaults: an absent field must stay absent so
// the merge only touches what the caller supplied.
var updateProductSchema = validator.Schema{
	Params: productKeySchema.Params,
	Body: validator.Fields{
		"name":       {Kind: validator.String, MaxLen: 50},
		"categoryID": {Kind: validator.Integer, Min: bound(0)},
		"qTags":      {Kind: validator.StringList},
		"attributes": {Kind: validator.ListMap},
		"price":      {Kind: validator.Number, Min: bound(0)},
		"imageURLs":  {Kind: validator.StringList},
		"providerID": {Kind: validator.Integer, Min: bound(0)},
		"launchDate": {Kind: validator.Date},
		"stock":      {Kind: validator.Integer, Min: bound(0)},
		"status":     {Kind: validator.String, Enum: productStatuses},
	},
}

// Categories

var filterCategoriesSchema = validator.Schema{
	Query: withPagination(validator.Fields{
		"name": {Kind: validator.String},
	}),
}

var createCategorySchema = validator.Schema{
	Body: validator.Fields{
		"categoryID":       {Kind: validator.Integer, Required: true, Min: bound(0)},
		"name":             {Kind: validator.String, Required: true, MaxLen: 50},
		"parentCategoryID": {Kind: validator.Integer, Min: bound(-1), Default: domain.NoParentCategory},
	},
}

var categoryKeySchema = validator.Schema{
	Params: validator.Fields{
		"categoryID": {Kind: validator.Integer, Min: bound(0)},
	},
}

var categoryProductsSchema = validator.Schema{
	Params: categoryKeySchema.Params,
	Query:  paginationFields,
}

var updateCategorySchema = validator.Schema{
	Params: categoryKeySchema.Params,
	Body: validator.Fields{
		"name":             {Kind: validator.String, MaxLen: 50},
		"parentCategoryID": {Kind: validator.Integer, Min: bound(-1)},
	},
}

// Providers

var filterProvidersSchema = validator.Schema{
	Query: withPagination(validator.Fields{
		"name":  {Kind: validator.String},
		"email": {Kind: validator.String, Format: validator.FormatEmail, MaxLen: 50},
	}),
}

var createProviderSchema = validator.Schema{
	Body: validator.Fields{
		"providerID": {Kind: validator.Integer, Required: true, Min: bound(0)},
		"name":       {Kind: validator.String, Required: true, MaxLen: 50},
		"website":    {Kind: validator.String, Format: validator.FormatURL, MaxLen: 100},
		"email":      {Kind: validator.String, Format: validator.FormatEmail, MaxLen: 50},
	},
}

var providerKeySchema = validator.Schema{
	Params: validator.Fields{
		"providerID": {Kind: validator.Integer, Min: bound(0)},
	},
}

var updateProviderSchema = validator.Schema{
	Params: providerKeySchema.Params,
	Body: validator.Fields{
		"name":    {Kind: validator.String, MaxLen: 50},
		"website": {Kind: validator.String, Format: validator.FormatURL, MaxLen: 100},
		"email":   {Kind: validator.String, Format: validator.FormatEmail, MaxLen: 50},
	},
}
