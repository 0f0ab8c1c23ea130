package memory

import "github.com/custodia-labs/ragchat-cli/internal/core/domain"

// DefaultDocuments returns the built-in knowledge base. Order matters:
// the content matcher resolves score ties by library position.
func DefaultDocuments() []domain.Document {
	return []domain.Document{
		{
			ID:    "doc1",
			Title: "React Best Practices Guide",
			Pages: []domain.Page{
				{Number: 1, Content: "React is a JavaScript library for building user interfaces. It allows developers to create reusable UI components."},
				{Number: 2, Content: "When using React hooks, always follow the Rules of Hooks. Hooks should only be called at the top level of your component."},
				{Number: 3, Content: "State management in React can be handled using useState, useReducer, Context API, or external libraries like Redux."},
			},
		},
		{
			ID:    "doc2",
			Title: "TypeScript Fundamentals",
			Pages: []domain.Page{
				{Number: 1, Content: "TypeScript is a typed superset of JavaScript that compiles to plain JavaScript. It adds static type definitions."},
				{Number: 2, Content: "Interfaces in TypeScript define the structure of objects. They help catch errors at compile time."},
				{Number: 3, Content: "Generics in TypeScript allow you to create reusable components that work with multiple types."},
			},
		},
		{
			ID:    "doc3",
			Title: "UI & Styling Libraries Guide",
			Pages: []domain.Page{
				{Number: 1, Content: "Tailwind CSS is a utility-first CSS framework providing low-level utility classes. ShadCN UI offers pre-built accessible components built on Radix UI. Material UI (MUI) provides comprehensive React components following Material Design principles."},
				{Number: 2, Content: "Ant Design is an enterprise-class UI design language with a rich set of components. Bootstrap offers responsive grid systems and pre-styled components. Styled-Components enables CSS-in-JS with scoped styling. CSS Modules provide locally scoped CSS classes."},
				{Number: 3, Content: "Choose Tailwind for utility-first rapid development, ShadCN for accessible components, MUI for Material Design, Ant Design for enterprise apps, Bootstrap for quick prototyping, Styled-Components for component-scoped styles, or CSS Modules for traditional scoped CSS."},
			},
		},
		{
			ID:    "doc4",
			Title: "State Management Solutions",
			Pages: []domain.Page{
				{Number: 1, Content: "Redux Toolkit simplifies Redux with less boilerplate and better TypeScript support. Zustand provides a minimal state management solution with a simple API. MobX uses observable state and automatic reactivity. Recoil offers atomic state management for React."},
				{Number: 2, Content: "Redux Toolkit is ideal for complex applications requiring predictable state updates. Zustand is perfect for small to medium apps needing lightweight state management. MobX excels with reactive programming patterns. Recoil provides fine-grained reactivity for React applications."},
				{Number: 3, Content: "Use Redux Toolkit for large-scale apps with complex state logic. Choose Zustand for simplicity and minimal setup. MobX works well for reactive data flows. Recoil is great for managing shared state across component trees."},
			},
		},
		{
			ID:    "doc5",
			Title: "Forms & Validation Libraries",
			Pages: []domain.Page{
				{Number: 1, Content: "React Hook Form minimizes re-renders and provides excellent performance with uncontrolled components. Formik offers a complete form solution with validation and error handling. Zod provides TypeScript-first schema validation. Yup is a JavaScript schema builder for value parsing and validation."},
				{Number: 2, Content: "React Hook Form uses refs to avoid unnecessary re-renders, making it highly performant. Formik provides built-in validation, error messages, and form state management. Zod integrates seamlessly with TypeScript for runtime type checking. Yup offers a fluent API for building validation schemas."},
				{Number: 3, Content: "Combine React Hook Form with Zod for type-safe forms with minimal re-renders. Use Formik for comprehensive form solutions with built-in validation. Yup works well with Formik for schema-based validation. Choose based on performance needs and TypeScript integration requirements."},
			},
		},
		{
			ID:    "doc6",
			Title: "Data Fetching & API Management",
			Pages: []domain.Page{
				{Number: 1, Content: "Axios is a promise-based HTTP client with interceptors and automatic JSON transformation. Fetch API is the native browser API for making HTTP requests. React Query (TanStack Query) provides powerful data synchronization and caching. SWR offers data fetching with revalidation and caching strategies."},
				{Number: 2, Content: "Axios provides request/response interceptors, automatic JSON parsing, and better error handling than Fetch. React Query handles caching, background updates, and synchronization automatically. SWR offers stale-while-revalidate caching strategy for optimal performance. Fetch API is lightweight and built into browsers."},
				{Number: 3, Content: "Use Axios for projects needing interceptors and better error handling. React Query excels for complex data fetching with caching needs. SWR is perfect for real-time data with automatic revalidation. Fetch API works well for simple requests without external dependencies."},
			},
		},
		{
			ID:    "doc7",
			Title: "Routing Solutions",
			Pages: []domain.Page{
				{Number: 1, Content: "React Router is the standard routing library for React applications, providing declarative routing with nested routes and code splitting. Next.js Router offers file-based routing with automatic code splitting and optimized performance through its App Router and Pages Router systems."},
				{Number: 2, Content: "React Router supports client-side routing with BrowserRouter, HashRouter, and MemoryRouter. It provides hooks like useNavigate, useParams, and useLocation. Next.js Router uses file-based routing where folder structure defines routes, with built-in support for dynamic routes and API routes."},
				{Number: 3, Content: "Choose React Router for single-page applications needing flexible routing. Next.js Router is ideal for full-stack React applications with server-side rendering, static site generation, and API routes. Both support lazy loading and code splitting for optimal performance."},
			},
		},
		{
			ID:    "doc8",
			Title: "Charts & Data Visualization",
			Pages: []domain.Page{
				{Number: 1, Content: "Chart.js is a popular charting library with simple API and beautiful default styling. Recharts is a composable charting library built on D3.js and React. D3.js provides powerful data visualization capabilities with full control over rendering and animations."},
				{Number: 2, Content: "Chart.js offers easy-to-use charts with minimal configuration and responsive design. Recharts provides React-friendly components with declarative syntax and built-in animations. D3.js enables custom visualizations with complete control over SVG and Canvas rendering."},
				{Number: 3, Content: "Use Chart.js for quick, beautiful charts with minimal setup. Recharts is perfect for React applications needing composable chart components. D3.js excels when you need custom, complex visualizations with full control over every aspect of rendering and interaction."},
			},
		},
		{
			ID:    "doc9",
			Title: "Animation Libraries",
			Pages: []domain.Page{
				{Number: 1, Content: "Framer Motion is a production-ready motion library for React, providing declarative animations and gesture support. GSAP (GreenSock Animation Platform) is a powerful JavaScript animation library with professional-grade performance and extensive plugin ecosystem."},
				{Number: 2, Content: "Framer Motion offers simple declarative syntax for animations, layout animations, and gesture handling. GSAP provides timeline-based animations, scroll triggers, and advanced easing functions. Both support complex animations but Framer Motion is React-specific while GSAP is framework-agnostic."},
				{Number: 3, Content: "Choose Framer Motion for React applications needing smooth animations with minimal code. GSAP is ideal for complex, performance-critical animations across any framework. Framer Motion integrates seamlessly with React, while GSAP offers more control and advanced features."},
			},
		},
		{
			ID:    "doc10",
			Title: "Utility Libraries",
			Pages: []domain.Page{
				{Number: 1, Content: "Lodash provides utility functions for common programming tasks like array manipulation, object operations, and function utilities. Moment.js and Day.js are date manipulation libraries, with Day.js being a lightweight alternative to Moment.js. UUID generates unique identifiers for distributed systems."},
				{Number: 2, Content: "Lodash offers functions like debounce, throttle, cloneDeep, and merge for common operations. Day.js is a 2KB alternative to Moment.js with similar API and plugin support. UUID libraries generate RFC-compliant unique identifiers. Choose Day.js over Moment.js for smaller bundle size."},
				{Number: 3, Content: "Use Lodash for complex data manipulation and utility functions. Day.js is recommended over Moment.js for date operations due to smaller size and active maintenance. UUID is essential for generating unique IDs in distributed systems and databases."},
			},
		},
		{
			ID:    "doc11",
			Title: "Testing Frameworks",
			Pages: []domain.Page{
				{Number: 1, Content: "Jest is a JavaScript testing framework with built-in test runner, assertion library, and mocking capabilities. React Testing Library provides simple utilities for testing React components by focusing on user behavior rather than implementation details."},
				{Number: 2, Content: "Jest offers snapshot testing, code coverage, and parallel test execution. React Testing Library encourages testing components like users interact with them, using queries like getByRole and getByText. Together they provide comprehensive testing for React applications."},
				{Number: 3, Content: "Use Jest for unit testing, integration testing, and mocking dependencies. React Testing Library helps test component behavior and accessibility. Combine both for robust React application testing that focuses on user experience and component functionality."},
			},
		},
		{
			ID:    "doc12",
			Title: "RAG Architecture Overview",
			Pages: []domain.Page{
				{Number: 1, Content: "Retrieval-Augmented Generation (RAG) combines information retrieval with language generation."},
				{Number: 2, Content: "RAG systems retrieve relevant documents from a knowledge base before generating responses."},
				{Number: 3, Content: "Citations in RAG systems help users verify the source of information and understand context."},
			},
		},
		{
			ID:    "doc13",
			Title: "Frontend Performance Optimization",
			Pages: []domain.Page{
				{Number: 1, Content: "Code splitting reduces initial bundle size by loading components only when needed."},
				{Number: 2, Content: "Memoization techniques like React.memo and useMemo prevent unnecessary re-renders."},
				{Number: 3, Content: "Lazy loading images and components improves initial page load time significantly."},
			},
		},
	}
}
