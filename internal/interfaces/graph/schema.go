package graph

// Schema SDL del API. Se mantiene a mano: el contrato es pequeño y estable.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	enum OrderStatus {
		PENDING
		COMPLETED
		CANCELED
	}

	type User {
		id: ID!
		name: String!
		lastname: String!
		email: String!
		createdAt: Time!
	}

	type Token {
		token: String!
	}

	type Product {
		id: ID!
		name: String!
		existence: Int!
		price: Float!
		createdAt: Time!
	}

	type Client {
		id: ID!
		name: String!
		lastname: String!
		company: String!
		email: String!
		cellphone: String
		vendor: ID!
	}

	type OrderItem {
		productId: ID!
		amount: Int!
		name: String!
		price: Float!
	}

	type Order {
		id: ID!
		items: [OrderItem!]!
		total: Float!
		client: Client!
		vendor: ID!
		date: Time!
		status: OrderStatus!
	}

	type TopClient {
		total: Float!
		client: Client!
	}

	type TopVendor {
		total: Float!
		vendor: User!
	}

	input UserInput {
		name: String!
		lastname: String!
		email: String!
		password: String!
	}

	input LoginInput {
		email: String!
		password: String!
	}

	input ProductInput {
		name: String!
		existence: Int!
		price: Float!
	}

	input ClientInput {
		name: String!
		lastname: String!
		company: String!
		email: String!
		cellphone: String
	}

	input OrderItemInput {
		productId: ID!
		amount: Int!
	}

	input OrderInput {
		clientId: ID!
		items: [OrderItemInput!]!
		status: OrderStatus
	}

	type Query {
		getUser: User!

		getProducts: [Product!]!
		getProduct(id: ID!): Product!

		getClients: [Client!]!
		getClientsVendor: [Client!]!
		getClient(id: ID!): Client!

		getOrders: [Order!]!
		getOrdersVendor: [Order!]!
		getOrder(id: ID!): Order!
		getOrdersByStatus(status: OrderStatus!): [Order!]!

		getBestClients: [TopClient!]!
		getBestVendors: [TopVendor!]!
		searchProduct(term: String!): [Product!]!
	}

	type Mutation {
		registerUser(input: UserInput!): User!
		login(input: LoginInput!): Token!

		createProduct(input: ProductInput!): Product!
		updateProduct(id: ID!, input: ProductInput!): Product!
		deleteProduct(id: ID!): String!

		createClient(input: ClientInput!): Client!
		updateClient(id: ID!, input: ClientInput!): Client!
		deleteClient(id: ID!): String!

		createOrder(input: OrderInput!): Order!
		updateOrder(id: ID!, status: OrderStatus!): Order!
		deleteOrder(id: ID!): String!
	}
`
