// Package workflow holds the requisition lifecycle: the status enum, the
// directed graph of legal moves and the per-kind table of which roles may
// take each edge.
//
// State transitions (shared by transfer requests and purchase orders):
//
//	Registered ──> Confirmed ──> LogisticsProcessed ──> Shipped ──> Received
//	    │              │                                               │
//	    └──> Rejected <┘                                               v
//	                                  Archived <── AccountingProcessed <── Closed
//
// Rejected and Archived are terminal. The graph is one fixed table so the
// legal moves can be audited in a single place; the Table type layers role
// and party grants on top of it for each requisition kind.
package workflow
