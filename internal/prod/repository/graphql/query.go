package graphql

const prodFields = `
	id
	dept { id }
	model { id name }
	melt
	meltShift
	number
	year
	progress
	hasDefect
	isSpoiled
`

const upsertProdMutation = `mutation upsertProd($input: ProdInput!) {
	upsertProd(input: $input) {` + prodFields + `}
}`

const allDeptsAndModelsQuery = `query allDeptsAndModelsQuery {
	depts {
		id
		name
	}
	models {
		id
		name
	}
}`
